package product

import (
	"context"
	"strings"
)

// Service defines the business logic for products.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, input CreateInput) (*Product, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]*Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrInvalidName
	}
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*Product, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrInvalidName
	}
	if input.Price != nil && *input.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
