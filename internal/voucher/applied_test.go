package voucher

import (
	"context"
	"testing"
	"time"

	"candyshop-be/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppliedStore(t *testing.T) {
	ctx := context.Background()
	owner := "0901234567"

	save10 := &Voucher{ID: 1, Code: "SAVE10", Kind: KindPercent, Discount: 10, Active: true, ExpiryDate: time.Now().Add(time.Hour)}
	save20 := &Voucher{ID: 2, Code: "SAVE20", Kind: KindPercent, Discount: 20, Active: true, ExpiryDate: time.Now().Add(time.Hour)}

	t.Run("ApplyAndRead", func(t *testing.T) {
		store := NewAppliedStore(kvstore.NewMemory())

		require.NoError(t, store.Apply(ctx, owner, save10))

		applied, err := store.Applied(ctx, owner)
		require.NoError(t, err)
		require.NotNil(t, applied)
		assert.Equal(t, "SAVE10", applied.Code)
	})

	t.Run("SecondApplyRejected", func(t *testing.T) {
		store := NewAppliedStore(kvstore.NewMemory())

		require.NoError(t, store.Apply(ctx, owner, save10))
		err := store.Apply(ctx, owner, save20)
		assert.ErrorIs(t, err, ErrAlreadyApplied)

		// the active voucher is unchanged
		applied, err := store.Applied(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", applied.Code)
	})

	t.Run("RemoveThenReapply", func(t *testing.T) {
		store := NewAppliedStore(kvstore.NewMemory())

		require.NoError(t, store.Apply(ctx, owner, save10))
		require.NoError(t, store.Remove(ctx, owner))

		applied, err := store.Applied(ctx, owner)
		require.NoError(t, err)
		assert.Nil(t, applied)

		assert.NoError(t, store.Apply(ctx, owner, save20))
	})

	t.Run("RemoveWithoutApply", func(t *testing.T) {
		store := NewAppliedStore(kvstore.NewMemory())

		assert.ErrorIs(t, store.Remove(ctx, owner), ErrNotApplied)
	})

	t.Run("PersistsAcrossRestart", func(t *testing.T) {
		kv := kvstore.NewMemory()

		store := NewAppliedStore(kv)
		require.NoError(t, store.Apply(ctx, owner, save10))

		reloaded := NewAppliedStore(kv)
		applied, err := reloaded.Applied(ctx, owner)
		require.NoError(t, err)
		require.NotNil(t, applied)
		assert.Equal(t, "SAVE10", applied.Code)

		// single-voucher rule survives the reload too
		assert.ErrorIs(t, reloaded.Apply(ctx, owner, save20), ErrAlreadyApplied)
	})

	t.Run("OwnersAreIndependent", func(t *testing.T) {
		store := NewAppliedStore(kvstore.NewMemory())

		require.NoError(t, store.Apply(ctx, "0901111111", save10))
		assert.NoError(t, store.Apply(ctx, "0902222222", save20))
	})
}
