package voucher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]*Voucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Voucher), args.Error(1)
}

func (m *MockRepository) ListActive(ctx context.Context, now time.Time) ([]*Voucher, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Voucher), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Voucher), args.Error(1)
}

func (m *MockRepository) GetByCode(ctx context.Context, code string) (*Voucher, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Voucher), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input Input) (*Voucher, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Voucher), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uint, input Input) (*Voucher, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Voucher), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Toggle(ctx context.Context, id uint) (*Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Voucher), args.Error(1)
}

func (m *MockRepository) IncrementUsage(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func intPtr(i int) *int          { return &i }
func f64Ptr(f float64) *float64  { return &f }

func newTestService(repo Repository, now time.Time) Service {
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Validate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	base := func() *Voucher {
		return &Voucher{
			ID:         1,
			Code:       "SAVE10",
			Kind:       KindPercent,
			Discount:   10,
			ExpiryDate: now.Add(72 * time.Hour),
			Active:     true,
		}
	}

	t.Run("UnknownCode", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		repo.On("GetByCode", ctx, "NOPE").Return(nil, nil)

		res, err := svc.Validate(ctx, "NOPE", 50000)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "voucher does not exist", res.Message)
	})

	t.Run("Inactive", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		v := base()
		v.Active = false
		repo.On("GetByCode", ctx, "SAVE10").Return(v, nil)

		res, err := svc.Validate(ctx, "SAVE10", 50000)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "voucher is no longer active", res.Message)
	})

	t.Run("Expired", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		v := base()
		v.ExpiryDate = now.Add(-time.Hour)
		repo.On("GetByCode", ctx, "SAVE10").Return(v, nil)

		res, err := svc.Validate(ctx, "SAVE10", 50000)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "voucher has expired", res.Message)
	})

	t.Run("UsageExhausted", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		v := base()
		v.MaxUses = intPtr(100)
		v.UsedCount = 100
		repo.On("GetByCode", ctx, "SAVE10").Return(v, nil)

		res, err := svc.Validate(ctx, "SAVE10", 50000)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "voucher usage limit reached", res.Message)
	})

	t.Run("BelowMinOrder", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		v := base()
		v.MinOrder = f64Ptr(100000)
		repo.On("GetByCode", ctx, "SAVE10").Return(v, nil)

		res, err := svc.Validate(ctx, "SAVE10", 50000)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Message, "100000")
	})

	t.Run("PercentDiscount", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		repo.On("GetByCode", ctx, "SAVE10").Return(base(), nil)

		res, err := svc.Validate(ctx, "SAVE10", 200000)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, KindPercent, res.Kind)
		assert.Equal(t, 20000.0, res.Discount)
		assert.Equal(t, 10.0, res.Value)
	})

	t.Run("FixedDiscount", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		v := base()
		v.Kind = KindFixed
		v.Discount = 15000
		repo.On("GetByCode", ctx, "SAVE10").Return(v, nil)

		res, err := svc.Validate(ctx, "SAVE10", 200000)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, 15000.0, res.Discount)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesCode", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(in Input) bool {
			return in.Code == "SAVE10"
		})).Return(&Voucher{ID: 1, Code: "SAVE10"}, nil)

		_, err := svc.Create(ctx, Input{Code: " save10 ", Kind: KindPercent, Discount: 10})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("RejectsEmptyCode", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, Input{Kind: KindPercent})
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("RejectsBadKind", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, Input{Code: "X", Kind: "bogus"})
		assert.ErrorIs(t, err, ErrInvalidKind)
	})
}

func TestVoucher_Usable(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	v := Voucher{Active: true, ExpiryDate: now.Add(time.Hour)}
	assert.True(t, v.Usable(now))

	v.Active = false
	assert.False(t, v.Usable(now))

	v.Active = true
	v.ExpiryDate = now.Add(-time.Minute)
	assert.False(t, v.Usable(now))

	v.ExpiryDate = now.Add(time.Hour)
	v.MaxUses = intPtr(5)
	v.UsedCount = 5
	assert.False(t, v.Usable(now))
}
