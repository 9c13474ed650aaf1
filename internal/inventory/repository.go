package inventory

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"candyshop-be/internal/logger"
)

type Repository interface {
	List(ctx context.Context) ([]Record, error)
	GetByProductID(ctx context.Context, productID uint) (*Record, error)
	Create(ctx context.Context, rec *Record) (*Record, error)
	Update(ctx context.Context, rec *Record) (*Record, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const recordColumns = `id, product_id, quantity_in_stock, min_stock, reorder_level, reorder_quantity, status, last_restocked, last_updated, updated_reason`

func scanRecord(row interface{ Scan(dest ...any) error }) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.ProductID,
		&rec.Quantity,
		&rec.MinStock,
		&rec.ReorderLevel,
		&rec.ReorderQty,
		&rec.Status,
		&rec.LastRestocked,
		&rec.LastUpdated,
		&rec.UpdatedReason,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) List(ctx context.Context) ([]Record, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM inventory ORDER BY product_id`)
	if err != nil {
		log.Error("failed to query inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Error("failed to scan inventory record", zap.Error(err))
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *repository) GetByProductID(ctx context.Context, productID uint) (*Record, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetByProductID"),
		zap.Uint("productID", productID),
	)

	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM inventory WHERE product_id = $1`, productID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("failed to get inventory record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *repository) Create(ctx context.Context, rec *Record) (*Record, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("productID", rec.ProductID),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inventory (product_id, quantity_in_stock, min_stock, reorder_level, reorder_quantity, status, last_restocked, last_updated, updated_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		rec.ProductID, rec.Quantity, rec.MinStock, rec.ReorderLevel, rec.ReorderQty,
		rec.Status, rec.LastRestocked, time.Now(), rec.UpdatedReason,
	).Scan(&rec.ID)
	if err != nil {
		log.Error("failed to create inventory record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *repository) Update(ctx context.Context, rec *Record) (*Record, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Update"),
		zap.Uint("productID", rec.ProductID),
	)

	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory
		SET quantity_in_stock = $1, min_stock = $2, reorder_level = $3, reorder_quantity = $4,
		    status = $5, last_restocked = $6, last_updated = $7, updated_reason = $8
		WHERE product_id = $9`,
		rec.Quantity, rec.MinStock, rec.ReorderLevel, rec.ReorderQty,
		rec.Status, rec.LastRestocked, time.Now(), rec.UpdatedReason, rec.ProductID,
	)
	if err != nil {
		log.Error("failed to update inventory record", zap.Error(err))
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return rec, nil
}
