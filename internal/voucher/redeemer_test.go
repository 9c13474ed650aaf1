package voucher

import (
	"context"
	"testing"

	"candyshop-be/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedeemer_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("RedeemsAndDetaches", func(t *testing.T) {
		repo := new(MockRepository)
		applied := NewAppliedStore(kvstore.NewMemory())
		redeemer := NewRedeemer(NewService(repo), applied)

		require.NoError(t, applied.Apply(ctx, "device-1", &Voucher{ID: 7, Code: "SWEET10"}))
		repo.On("IncrementUsage", mock.Anything, uint(7)).Return(nil)

		require.NoError(t, redeemer.Consume(ctx, "device-1"))

		v, err := applied.Applied(ctx, "device-1")
		require.NoError(t, err)
		assert.Nil(t, v)
		repo.AssertExpectations(t)
	})

	t.Run("NothingAppliedIsNoop", func(t *testing.T) {
		repo := new(MockRepository)
		applied := NewAppliedStore(kvstore.NewMemory())
		redeemer := NewRedeemer(NewService(repo), applied)

		assert.NoError(t, redeemer.Consume(ctx, "device-1"))
		repo.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything)
	})

	t.Run("CounterFailureKeepsVoucherApplied", func(t *testing.T) {
		repo := new(MockRepository)
		applied := NewAppliedStore(kvstore.NewMemory())
		redeemer := NewRedeemer(NewService(repo), applied)

		require.NoError(t, applied.Apply(ctx, "device-1", &Voucher{ID: 7}))
		repo.On("IncrementUsage", mock.Anything, uint(7)).Return(assert.AnError)

		assert.Error(t, redeemer.Consume(ctx, "device-1"))

		v, err := applied.Applied(ctx, "device-1")
		require.NoError(t, err)
		assert.NotNil(t, v)
	})
}
