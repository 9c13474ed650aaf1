package promotion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Promotion), args.Error(1)
}

func (m *MockRepository) ListRunning(ctx context.Context, now time.Time) ([]Promotion, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Promotion), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Promotion), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *Promotion) (*Promotion, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Promotion), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p *Promotion) (*Promotion, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Promotion), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) IncrementUsage(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRunning(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)
	p := &Promotion{Title: "Summer Sale", StartDate: start, EndDate: end, Active: true}

	assert.True(t, p.Running(start))
	assert.True(t, p.Running(start.AddDate(0, 0, 15)))
	assert.True(t, p.Running(end))
	assert.False(t, p.Running(start.Add(-time.Second)))
	assert.False(t, p.Running(end.Add(time.Second)))

	p.Active = false
	assert.False(t, p.Running(start.AddDate(0, 0, 15)))
}

func TestCreateValidation(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		p := &Promotion{Title: "Tet Sale", StartDate: start, EndDate: start.AddDate(0, 1, 0), Active: true}
		repo.On("Create", mock.Anything, p).Return(p, nil)

		_, err := svc.Create(context.Background(), p)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), &Promotion{StartDate: start, EndDate: start.AddDate(0, 1, 0)})

		assert.ErrorIs(t, err, ErrMissingTitle)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("WindowInverted", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), &Promotion{Title: "Bad", StartDate: start, EndDate: start})

		assert.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestUse(t *testing.T) {
	limit := 3

	t.Run("IncrementsCount", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(1)).
			Return(&Promotion{ID: 1, Title: "Tet Sale", UsageLimit: &limit, UsageCount: 2}, nil)
		repo.On("IncrementUsage", mock.Anything, uint(1)).Return(nil)

		p, err := svc.Use(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, 3, p.UsageCount)
		repo.AssertExpectations(t)
	})

	t.Run("LimitReached", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(1)).
			Return(&Promotion{ID: 1, Title: "Tet Sale", UsageLimit: &limit, UsageCount: 3}, nil)

		_, err := svc.Use(context.Background(), 1)

		assert.ErrorIs(t, err, ErrLimitReached)
		repo.AssertNotCalled(t, "IncrementUsage")
	})

	t.Run("NoLimit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(2)).
			Return(&Promotion{ID: 2, Title: "Evergreen", UsageCount: 999}, nil)
		repo.On("IncrementUsage", mock.Anything, uint(2)).Return(nil)

		_, err := svc.Use(context.Background(), 2)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(9)).Return(nil, ErrNotFound)

		_, err := svc.Use(context.Background(), 9)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
