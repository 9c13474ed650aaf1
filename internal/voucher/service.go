package voucher

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service defines the business logic for vouchers.
type Service interface {
	List(ctx context.Context) ([]*Voucher, error)
	Available(ctx context.Context, now time.Time) ([]*Voucher, error)
	GetByID(ctx context.Context, id uint) (*Voucher, error)
	GetByCode(ctx context.Context, code string) (*Voucher, error)
	Create(ctx context.Context, input Input) (*Voucher, error)
	Update(ctx context.Context, id uint, input Input) (*Voucher, error)
	Delete(ctx context.Context, id uint) error
	Toggle(ctx context.Context, id uint) (*Voucher, error)
	Validate(ctx context.Context, code string, totalAmount float64) (*Validation, error)
	MarkUsed(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]*Voucher, error) {
	return s.repo.List(ctx)
}

func (s *service) Available(ctx context.Context, now time.Time) ([]*Voucher, error) {
	return s.repo.ListActive(ctx, now)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Voucher, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*Voucher, error) {
	v, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *service) Create(ctx context.Context, input Input) (*Voucher, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id uint, input Input) (*Voucher, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Toggle(ctx context.Context, id uint) (*Voucher, error) {
	return s.repo.Toggle(ctx, id)
}

// MarkUsed counts one redemption against the voucher's usage limit.
func (s *service) MarkUsed(ctx context.Context, id uint) error {
	return s.repo.IncrementUsage(ctx, id)
}

// Validate is the authoritative usability check for one code against one
// order subtotal. It never returns an error for a merely unusable voucher;
// the reason travels in the Validation message.
func (s *service) Validate(ctx context.Context, code string, totalAmount float64) (*Validation, error) {
	v, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return &Validation{Valid: false, Message: "voucher does not exist"}, nil
	}
	if !v.Active {
		return &Validation{Valid: false, Message: "voucher is no longer active"}, nil
	}
	if s.now().After(v.ExpiryDate) {
		return &Validation{Valid: false, Message: "voucher has expired"}, nil
	}
	if v.MaxUses != nil && v.UsedCount >= *v.MaxUses {
		return &Validation{Valid: false, Message: "voucher usage limit reached"}, nil
	}
	if v.MinOrder != nil && totalAmount < *v.MinOrder {
		return &Validation{
			Valid:   false,
			Message: fmt.Sprintf("order must be at least %.0f VND", *v.MinOrder),
		}, nil
	}

	discount := v.Discount
	if v.Kind == KindPercent {
		discount = totalAmount * v.Discount / 100
	}

	return &Validation{
		Valid:    true,
		Message:  "voucher is valid",
		Kind:     v.Kind,
		Value:    v.Discount,
		Discount: discount,
	}, nil
}

func validateInput(input *Input) error {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Code == "" {
		return ErrInvalidCode
	}
	if input.Kind != KindPercent && input.Kind != KindFixed {
		return ErrInvalidKind
	}
	return nil
}
