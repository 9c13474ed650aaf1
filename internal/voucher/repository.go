package voucher

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Voucher, error)
	ListActive(ctx context.Context, now time.Time) ([]*Voucher, error)
	GetByID(ctx context.Context, id uint) (*Voucher, error)
	GetByCode(ctx context.Context, code string) (*Voucher, error)
	Create(ctx context.Context, input Input) (*Voucher, error)
	Update(ctx context.Context, id uint, input Input) (*Voucher, error)
	Delete(ctx context.Context, id uint) error
	Toggle(ctx context.Context, id uint) (*Voucher, error)
	IncrementUsage(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const voucherColumns = `id, code, description, kind, discount, min_order, max_uses, used_count, expiry_date, is_active, created_at, updated_at`

func scanVoucher(row interface{ Scan(...any) error }) (*Voucher, error) {
	var v Voucher
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.Description,
		&v.Kind,
		&v.Discount,
		&v.MinOrder,
		&v.MaxUses,
		&v.UsedCount,
		&v.ExpiryDate,
		&v.Active,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) List(ctx context.Context) ([]*Voucher, error) {
	return r.queryVouchers(ctx,
		`SELECT `+voucherColumns+` FROM vouchers ORDER BY created_at DESC`)
}

func (r *repository) ListActive(ctx context.Context, now time.Time) ([]*Voucher, error) {
	return r.queryVouchers(ctx, `
		SELECT `+voucherColumns+`
		FROM vouchers
		WHERE is_active = TRUE
		  AND expiry_date >= $1
		  AND (max_uses IS NULL OR used_count < max_uses)
		ORDER BY expiry_date ASC
	`, now)
}

func (r *repository) queryVouchers(ctx context.Context, query string, args ...any) ([]*Voucher, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "queryVouchers"),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vouchers []*Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Voucher, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`, id)

	v, err := scanVoucher(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Voucher, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+voucherColumns+` FROM vouchers WHERE code = $1`,
		strings.ToUpper(code))

	v, err := scanVoucher(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *repository) Create(ctx context.Context, input Input) (*Voucher, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateVoucher"),
		zap.String("code", input.Code),
	)

	query := `
	INSERT INTO vouchers (code, description, kind, discount, min_order, max_uses, expiry_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + voucherColumns

	row := r.db.QueryRowContext(ctx, query,
		strings.ToUpper(input.Code), input.Description, input.Kind,
		input.Discount, input.MinOrder, input.MaxUses, input.ExpiryDate)

	v, err := scanVoucher(row)
	if err != nil {
		log.Error("failed to create voucher", zap.Error(err))
		return nil, err
	}

	log.Info("voucher created", zap.Uint("voucher_id", v.ID))
	return v, nil
}

func (r *repository) Update(ctx context.Context, id uint, input Input) (*Voucher, error) {
	query := `
	UPDATE vouchers
	SET code = $1,
	    description = $2,
	    kind = $3,
	    discount = $4,
	    min_order = $5,
	    max_uses = $6,
	    expiry_date = $7,
	    updated_at = NOW()
	WHERE id = $8
	RETURNING ` + voucherColumns

	row := r.db.QueryRowContext(ctx, query,
		strings.ToUpper(input.Code), input.Description, input.Kind,
		input.Discount, input.MinOrder, input.MaxUses, input.ExpiryDate, id)

	v, err := scanVoucher(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vouchers WHERE id = $1`, id)
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

func (r *repository) Toggle(ctx context.Context, id uint) (*Voucher, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE vouchers
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING `+voucherColumns, id)

	v, err := scanVoucher(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *repository) IncrementUsage(ctx context.Context, id uint) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE vouchers
		SET used_count = used_count + 1, updated_at = NOW()
		WHERE id = $1
	`, id)
	return err
}
