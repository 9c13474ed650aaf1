package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]*Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input CreateInput) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uint, input UpdateInput) (*Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("product.CreateInput")).
			Return(&Product{ID: 1, Name: "Candy A", Price: 10000}, nil)

		p, err := svc.Create(ctx, CreateInput{Name: "Candy A", Price: 10000, Stock: 30})
		require.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, CreateInput{Name: "   ", Price: 10000})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, CreateInput{Name: "Candy A", Price: 0})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, uint(9)).Return(nil, nil)

		_, err := svc.GetByID(ctx, 9)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("RejectsBadPrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		bad := -5.0
		_, err := svc.Update(ctx, 1, UpdateInput{Price: &bad})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}
