package category

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidName = errors.New("category name is required")

type Service interface {
	List(ctx context.Context, filter *string) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	Create(ctx context.Context, input Input) (*Category, error)
	Update(ctx context.Context, id uint, input Input) (*Category, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter *string) ([]*Category, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, input Input) (*Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrInvalidName
	}
	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id uint, input Input) (*Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrInvalidName
	}
	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
