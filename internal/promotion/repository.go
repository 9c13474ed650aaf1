package promotion

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"candyshop-be/internal/logger"
)

type Repository interface {
	List(ctx context.Context) ([]Promotion, error)
	ListRunning(ctx context.Context, now time.Time) ([]Promotion, error)
	GetByID(ctx context.Context, id uint) (*Promotion, error)
	Create(ctx context.Context, p *Promotion) (*Promotion, error)
	Update(ctx context.Context, p *Promotion) (*Promotion, error)
	Delete(ctx context.Context, id uint) error
	IncrementUsage(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const promotionColumns = `id, title, description, image_url, start_date, end_date, is_active, usage_limit, usage_count, created_at`

func scanPromotion(row interface{ Scan(dest ...any) error }) (*Promotion, error) {
	var p Promotion
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.StartDate, &p.EndDate, &p.Active, &p.UsageLimit, &p.UsageCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]Promotion, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY start_date DESC`)
	if err != nil {
		log.Error("failed to query promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows, log)
}

func (r *repository) ListRunning(ctx context.Context, now time.Time) ([]Promotion, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListRunning"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+promotionColumns+`
		FROM promotions
		WHERE is_active = TRUE AND start_date <= $1 AND end_date >= $1
		ORDER BY start_date DESC`, now)
	if err != nil {
		log.Error("failed to query running promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows, log)
}

func collect(rows *sql.Rows, log *zap.Logger) ([]Promotion, error) {
	var promotions []Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			log.Error("failed to scan promotion", zap.Error(err))
			return nil, err
		}
		promotions = append(promotions, *p)
	}
	return promotions, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Promotion, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetByID"),
		zap.Uint("id", id),
	)

	row := r.db.QueryRowContext(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id)
	p, err := scanPromotion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("failed to get promotion", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Promotion) (*Promotion, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO promotions (title, description, image_url, start_date, end_date, is_active, usage_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		p.Title, p.Description, p.ImageURL, p.StartDate, p.EndDate, p.Active, p.UsageLimit, time.Now(),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		log.Error("failed to create promotion", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, p *Promotion) (*Promotion, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Update"),
		zap.Uint("id", p.ID),
	)

	res, err := r.db.ExecContext(ctx, `
		UPDATE promotions
		SET title = $1, description = $2, image_url = $3, start_date = $4, end_date = $5, is_active = $6, usage_limit = $7
		WHERE id = $8`,
		p.Title, p.Description, p.ImageURL, p.StartDate, p.EndDate, p.Active, p.UsageLimit, p.ID,
	)
	if err != nil {
		log.Error("failed to update promotion", zap.Error(err))
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Delete"),
		zap.Uint("id", id),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete promotion", zap.Error(err))
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) IncrementUsage(ctx context.Context, id uint) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE promotions
		SET usage_count = usage_count + 1
		WHERE id = $1
	`, id)
	return err
}
