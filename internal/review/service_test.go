package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByProduct(ctx context.Context, productID uint, approvedOnly bool) ([]Review, error) {
	args := m.Called(ctx, productID, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, rev *Review) (*Review, error) {
	args := m.Called(ctx, rev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) SetStatus(ctx context.Context, id uint, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) Vote(ctx context.Context, id uint, helpful bool) error {
	args := m.Called(ctx, id, helpful)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(rev *Review) bool {
			return rev.ProductID == 3 && rev.Rating == 4 && rev.Status == StatusPending
		})).Return(&Review{ID: 1}, nil)

		_, err := svc.Create(context.Background(), CreateInput{ProductID: 3, Author: "Linh", Rating: 4, Comment: "Great candy"})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(context.Background(), CreateInput{ProductID: 3, Rating: rating})
			assert.ErrorIs(t, err, ErrInvalidRating)
		}
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("MissingProduct", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), CreateInput{Rating: 5})

		assert.ErrorIs(t, err, ErrMissingProductID)
	})

	t.Run("BlankAuthorDefaults", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(rev *Review) bool {
			return rev.Author == "Anonymous"
		})).Return(&Review{ID: 1}, nil)

		_, err := svc.Create(context.Background(), CreateInput{ProductID: 3, Author: "   ", Rating: 5})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestModeration(t *testing.T) {
	t.Run("Approve", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("SetStatus", mock.Anything, uint(1), StatusApproved).Return(nil)

		assert.NoError(t, svc.Approve(context.Background(), 1))
		repo.AssertExpectations(t)
	})

	t.Run("Reject", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("SetStatus", mock.Anything, uint(1), StatusRejected).Return(nil)

		assert.NoError(t, svc.Reject(context.Background(), 1))
		repo.AssertExpectations(t)
	})

	t.Run("RejectNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("SetStatus", mock.Anything, uint(9), StatusRejected).Return(ErrNotFound)

		assert.ErrorIs(t, svc.Reject(context.Background(), 9), ErrNotFound)
	})
}

func TestVotes(t *testing.T) {
	t.Run("Helpful", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Vote", mock.Anything, uint(1), true).Return(nil)

		assert.NoError(t, svc.MarkHelpful(context.Background(), 1))
		repo.AssertExpectations(t)
	})

	t.Run("Unhelpful", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Vote", mock.Anything, uint(1), false).Return(nil)

		assert.NoError(t, svc.MarkUnhelpful(context.Background(), 1))
		repo.AssertExpectations(t)
	})
}
