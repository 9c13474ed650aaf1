package inventory

import (
	"context"
	"time"

	"go.uber.org/zap"

	"candyshop-be/internal/logger"
)

type Service interface {
	List(ctx context.Context) ([]Record, error)
	GetByProductID(ctx context.Context, productID uint) (*Record, error)
	Track(ctx context.Context, rec *Record) (*Record, error)
	Adjust(ctx context.Context, productID uint, input AdjustInput) (*Record, error)
	Restock(ctx context.Context, productID uint, amount int, reason *string) (*Record, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByProductID(ctx context.Context, productID uint) (*Record, error) {
	return s.repo.GetByProductID(ctx, productID)
}

// Track starts tracking stock for a product. The status band is always
// derived from the thresholds, never taken from the caller.
func (s *service) Track(ctx context.Context, rec *Record) (*Record, error) {
	if rec.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	rec.Status = StatusFor(rec.Quantity, rec.MinStock, rec.ReorderLevel)
	return s.repo.Create(ctx, rec)
}

func (s *service) Adjust(ctx context.Context, productID uint, input AdjustInput) (*Record, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Adjust"),
		zap.Uint("productID", productID),
	)

	if input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	rec, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	rec.Quantity = input.Quantity
	rec.Status = StatusFor(rec.Quantity, rec.MinStock, rec.ReorderLevel)
	rec.UpdatedReason = input.Reason

	log.Info("adjusting stock level",
		zap.Int("quantity", input.Quantity),
		zap.String("status", string(rec.Status)),
	)
	return s.repo.Update(ctx, rec)
}

// Restock adds to the current quantity and stamps the restock time.
func (s *service) Restock(ctx context.Context, productID uint, amount int, reason *string) (*Record, error) {
	if amount <= 0 {
		return nil, ErrInvalidRestock
	}

	rec, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	rec.Quantity += amount
	rec.Status = StatusFor(rec.Quantity, rec.MinStock, rec.ReorderLevel)
	restocked := s.now()
	rec.LastRestocked = &restocked
	rec.UpdatedReason = reason

	return s.repo.Update(ctx, rec)
}
