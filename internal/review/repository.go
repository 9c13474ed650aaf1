package review

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"candyshop-be/internal/logger"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID uint, approvedOnly bool) ([]Review, error)
	Create(ctx context.Context, rev *Review) (*Review, error)
	SetStatus(ctx context.Context, id uint, status Status) error
	Vote(ctx context.Context, id uint, helpful bool) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const reviewColumns = `id, product_id, author, rating, comment, status, helpful_count, unhelpful_count, created_at`

func (r *repository) ListByProduct(ctx context.Context, productID uint, approvedOnly bool) ([]Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByProduct"),
		zap.Uint("productID", productID),
	)

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1`
	args := []any{productID}
	if approvedOnly {
		query += ` AND status = $2`
		args = append(args, StatusApproved)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var rev Review
		err := rows.Scan(&rev.ID, &rev.ProductID, &rev.Author, &rev.Rating, &rev.Comment,
			&rev.Status, &rev.HelpfulCount, &rev.UnhelpfulCount, &rev.CreatedAt)
		if err != nil {
			log.Error("failed to scan review", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *repository) Create(ctx context.Context, rev *Review) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("productID", rev.ProductID),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (product_id, author, rating, comment, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		rev.ProductID, rev.Author, rev.Rating, rev.Comment, rev.Status, time.Now(),
	).Scan(&rev.ID, &rev.CreatedAt)
	if err != nil {
		log.Error("failed to create review", zap.Error(err))
		return nil, err
	}
	return rev, nil
}

func (r *repository) SetStatus(ctx context.Context, id uint, status Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SetStatus"),
		zap.Uint("id", id),
	)

	res, err := r.db.ExecContext(ctx, `UPDATE reviews SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		log.Error("failed to update review status", zap.Error(err))
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

// Vote bumps the helpful or unhelpful counter.
func (r *repository) Vote(ctx context.Context, id uint, helpful bool) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Vote"),
		zap.Uint("id", id),
	)

	column := "unhelpful_count"
	if helpful {
		column = "helpful_count"
	}

	res, err := r.db.ExecContext(ctx, `UPDATE reviews SET `+column+` = `+column+` + 1 WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to record review vote", zap.Error(err))
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

func (r *repository) Delete(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Delete"),
		zap.Uint("id", id),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete review", zap.Error(err))
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
