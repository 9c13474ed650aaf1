package review

import (
	"context"
	"strings"
)

type Service interface {
	ListByProduct(ctx context.Context, productID uint, approvedOnly bool) ([]Review, error)
	Create(ctx context.Context, input CreateInput) (*Review, error)
	Approve(ctx context.Context, id uint) error
	Reject(ctx context.Context, id uint) error
	MarkHelpful(ctx context.Context, id uint) error
	MarkUnhelpful(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListByProduct(ctx context.Context, productID uint, approvedOnly bool) ([]Review, error) {
	return s.repo.ListByProduct(ctx, productID, approvedOnly)
}

// Create stores a review pending moderation. It only becomes visible
// to shoppers once approved.
func (s *service) Create(ctx context.Context, input CreateInput) (*Review, error) {
	if input.ProductID == 0 {
		return nil, ErrMissingProductID
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = "Anonymous"
	}

	rev := &Review{
		ProductID: input.ProductID,
		Author:    author,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Status:    StatusPending,
	}
	return s.repo.Create(ctx, rev)
}

func (s *service) Approve(ctx context.Context, id uint) error {
	return s.repo.SetStatus(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id uint) error {
	return s.repo.SetStatus(ctx, id, StatusRejected)
}

func (s *service) MarkHelpful(ctx context.Context, id uint) error {
	return s.repo.Vote(ctx, id, true)
}

func (s *service) MarkUnhelpful(ctx context.Context, id uint) error {
	return s.repo.Vote(ctx, id, false)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
