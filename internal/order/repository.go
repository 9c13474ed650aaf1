package order

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
	Create(ctx context.Context, o *Order) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, customer_name, phone, address, payment_method, status, total_amount, transaction_code, order_channel, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.Phone,
		&o.Address,
		&o.PaymentMethod,
		&o.Status,
		&o.TotalAmount,
		&o.TransactionCode,
		&o.OrderChannel,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the order and its line items in one transaction.
func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("phone", o.Phone),
	)

	start := time.Now()
	log.Debug("start create order")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, phone, address, payment_method, status, total_amount, transaction_code, order_channel)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+orderColumns,
		o.CustomerName, o.Phone, o.Address, o.PaymentMethod, o.Status,
		o.TotalAmount, o.TransactionCode, o.OrderChannel)

	created, err := scanOrder(row)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for _, item := range o.Items {
		var itemID uint
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			created.ID, item.ProductID, item.Name, item.Quantity, item.Price).
			Scan(&itemID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		item.ID = itemID
		item.OrderID = created.ID
		created.Items = append(created.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.Uint("order_id", created.ID),
		zap.Float64("total", created.TotalAmount),
		zap.Duration("duration", time.Since(start)),
	)

	return created, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
	)

	where := []string{}
	args := []any{}

	if filter.Phone != "" {
		where = append(where, fmt.Sprintf("phone = $%d", len(args)+1))
		args = append(args, filter.Phone)
		log = log.With(zap.String("phone", filter.Phone))
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
		log = log.With(zap.String("status", string(*filter.Status)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`, id)
	if err != nil {
		return nil, err
	}
	defer items.Close()

	for items.Next() {
		var it Item
		if err := items.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return o, items.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
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
