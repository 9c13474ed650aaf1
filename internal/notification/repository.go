package notification

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"candyshop-be/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) (*Notification, error)
	List(ctx context.Context) ([]Notification, error)
	NewSince(ctx context.Context, since time.Time, recipient string) ([]Notification, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) (*Notification, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (id, title, message, category, target, target_ids, action_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		n.ID, n.Title, n.Message, n.Category, n.Target, pq.Array(n.TargetIDs), n.ActionURL, time.Now(),
	).Scan(&n.CreatedAt)
	if err != nil {
		log.Error("failed to create notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (r *repository) List(ctx context.Context) ([]Notification, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, message, category, target, target_ids, action_url, created_at
		FROM notifications
		ORDER BY created_at DESC`)
	if err != nil {
		log.Error("failed to query notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

// NewSince returns notifications created strictly after since that are
// addressed to everyone or to the given recipient.
func (r *repository) NewSince(ctx context.Context, since time.Time, recipient string) ([]Notification, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "NewSince"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, message, category, target, target_ids, action_url, created_at
		FROM notifications
		WHERE created_at > $1 AND (target = $2 OR $3 = ANY(target_ids))
		ORDER BY created_at ASC`,
		since, TargetAll, recipient)
	if err != nil {
		log.Error("failed to query new notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows *sql.Rows) ([]Notification, error) {
	var list []Notification
	for rows.Next() {
		var n Notification
		var targetIDs pq.StringArray
		err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Category, &n.Target, &targetIDs, &n.ActionURL, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		n.TargetIDs = targetIDs
		list = append(list, n)
	}
	return list, rows.Err()
}
