package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "cart:0901234567")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SetGet", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "cart:0901234567", []byte(`{"lines":[]}`)))

		val, err := store.Get(ctx, "cart:0901234567")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"lines":[]}`), val)
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "fav:1", []byte("abc")))

		val, err := store.Get(ctx, "fav:1")
		require.NoError(t, err)
		val[0] = 'x'

		again, err := store.Get(ctx, "fav:1")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "tmp", []byte("1")))
		require.NoError(t, store.Delete(ctx, "tmp"))

		_, err := store.Get(ctx, "tmp")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteMissingIsNoop", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-set"))
	})
}
