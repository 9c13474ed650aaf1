package address

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"candyshop-be/internal/kvstore"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstAddressBecomesDefault", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory())

		added, err := store.Add(ctx, "device-1", Address{Street: "12 Hang Bac", City: "Hanoi"})

		assert.NoError(t, err)
		assert.True(t, added.IsDefault)
		assert.NotEmpty(t, added.ID)
	})

	t.Run("ExplicitDefaultDemotesOthers", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory())
		first, _ := store.Add(ctx, "device-1", Address{Street: "12 Hang Bac"})
		second, err := store.Add(ctx, "device-1", Address{Street: "5 Le Loi", IsDefault: true})
		assert.NoError(t, err)

		book, _ := store.List(ctx, "device-1")
		assert.Len(t, book, 2)
		for _, addr := range book {
			if addr.ID == first.ID {
				assert.False(t, addr.IsDefault)
			}
			if addr.ID == second.ID {
				assert.True(t, addr.IsDefault)
			}
		}
	})

	t.Run("MissingStreet", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory())

		_, err := store.Add(ctx, "device-1", Address{Street: "  "})

		assert.ErrorIs(t, err, ErrMissingStreet)
	})

	t.Run("MissingOwner", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory())

		_, err := store.Add(ctx, "", Address{Street: "12 Hang Bac"})

		assert.ErrorIs(t, err, ErrMissingOwner)
	})
}

func TestSetDefault(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())
	first, _ := store.Add(ctx, "device-1", Address{Street: "12 Hang Bac"})
	second, _ := store.Add(ctx, "device-1", Address{Street: "5 Le Loi"})

	err := store.SetDefault(ctx, "device-1", second.ID)
	assert.NoError(t, err)

	book, _ := store.List(ctx, "device-1")
	for _, addr := range book {
		assert.Equal(t, addr.ID == second.ID, addr.IsDefault)
	}
	_ = first

	assert.ErrorIs(t, store.SetDefault(ctx, "device-1", "missing"), ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletingDefaultPromotesNext", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory())
		first, _ := store.Add(ctx, "device-1", Address{Street: "12 Hang Bac"})
		_, _ = store.Add(ctx, "device-1", Address{Street: "5 Le Loi"})

		err := store.Delete(ctx, "device-1", first.ID)
		assert.NoError(t, err)

		book, _ := store.List(ctx, "device-1")
		assert.Len(t, book, 1)
		assert.True(t, book[0].IsDefault)
	})

	t.Run("NotFound", func(t *testing.T) {
		store := NewStore(kvstore.NewMemory())

		assert.ErrorIs(t, store.Delete(ctx, "device-1", "missing"), ErrNotFound)
	})
}

func TestPersistenceAcrossRestart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	store := NewStore(kv)
	added, _ := store.Add(ctx, "device-1", Address{Street: "12 Hang Bac", City: "Hanoi"})

	reopened := NewStore(kv)
	book, err := reopened.List(ctx, "device-1")

	assert.NoError(t, err)
	assert.Len(t, book, 1)
	assert.Equal(t, added.ID, book[0].ID)
}
