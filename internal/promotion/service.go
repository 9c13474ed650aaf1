package promotion

import (
	"context"
	"strings"
	"time"
)

type Service interface {
	List(ctx context.Context) ([]Promotion, error)
	ListRunning(ctx context.Context) ([]Promotion, error)
	GetByID(ctx context.Context, id uint) (*Promotion, error)
	Create(ctx context.Context, p *Promotion) (*Promotion, error)
	Update(ctx context.Context, p *Promotion) (*Promotion, error)
	Delete(ctx context.Context, id uint) error
	Use(ctx context.Context, id uint) (*Promotion, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]Promotion, error) {
	return s.repo.List(ctx)
}

func (s *service) ListRunning(ctx context.Context) ([]Promotion, error) {
	return s.repo.ListRunning(ctx, s.now())
}

func (s *service) GetByID(ctx context.Context, id uint) (*Promotion, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p *Promotion) (*Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, p *Promotion) (*Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Use records one redemption. An exhausted promotion stays untouched.
func (s *service) Use(ctx context.Context, id uint) (*Promotion, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Exhausted() {
		return nil, ErrLimitReached
	}

	if err := s.repo.IncrementUsage(ctx, id); err != nil {
		return nil, err
	}
	p.UsageCount++
	return p, nil
}

func validate(p *Promotion) error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrMissingTitle
	}
	if !p.EndDate.After(p.StartDate) {
		return ErrInvalidWindow
	}
	return nil
}
