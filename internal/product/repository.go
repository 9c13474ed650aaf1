package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, input CreateInput) (*Product, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, price, image_url, description, stock, category_id, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.ImageURL,
		&p.Description,
		&p.Stock,
		&p.CategoryID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	where := []string{}
	args := []any{}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
		log = log.With(zap.String("search", filter.Search))
	}
	if filter.CategoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)+1))
		args = append(args, *filter.CategoryID)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, input CreateInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("name", input.Name),
	)

	query := `
	INSERT INTO products (name, price, image_url, description, stock, category_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + productColumns

	row := r.db.QueryRowContext(ctx, query,
		input.Name, input.Price, input.ImageURL, input.Description, input.Stock, input.CategoryID)

	p, err := scanProduct(row)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return p, nil
}

func (r *repository) Update(ctx context.Context, id uint, input UpdateInput) (*Product, error) {
	query := `
	UPDATE products
	SET name = COALESCE($1, name),
	    price = COALESCE($2, price),
	    image_url = COALESCE($3, image_url),
	    description = COALESCE($4, description),
	    stock = COALESCE($5, stock),
	    category_id = COALESCE($6, category_id),
	    updated_at = NOW()
	WHERE id = $7
	RETURNING ` + productColumns

	row := r.db.QueryRowContext(ctx, query,
		input.Name, input.Price, input.ImageURL, input.Description, input.Stock, input.CategoryID, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
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
