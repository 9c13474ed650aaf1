package category

import (
	"context"
	"database/sql"
	"errors"

	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	List(ctx context.Context, filter *string) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	Create(ctx context.Context, input Input) (*Category, error)
	Update(ctx context.Context, id uint, input Input) (*Category, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter *string) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListCategories"),
	)

	query := `SELECT id, name, description, created_at FROM categories`
	args := []any{}

	if filter != nil && *filter != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+*filter+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, input Input) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`, input.Name, input.Description).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, id uint, input Input) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1, description = COALESCE($2, description)
		WHERE id = $3
		RETURNING id, name, description, created_at
	`, input.Name, input.Description, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
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
