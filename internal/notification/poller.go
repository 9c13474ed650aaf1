package notification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"candyshop-be/internal/logger"
)

const DefaultPollInterval = 5 * time.Second

// FetchFunc returns notifications created after since for the recipient.
type FetchFunc func(ctx context.Context, since time.Time, recipient string) ([]Notification, error)

// Handler receives each batch of new notifications in arrival order.
type Handler func(notifications []Notification)

// Poller periodically fetches new notifications for one recipient and
// hands them to a handler. The cursor only moves forward, so a fetch
// error or an empty batch never re-delivers what was already seen.
type Poller struct {
	fetch     FetchFunc
	handler   Handler
	recipient string
	interval  time.Duration
	since     time.Time
}

func NewPoller(fetch FetchFunc, handler Handler, recipient string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		fetch:     fetch,
		handler:   handler,
		recipient: recipient,
		interval:  interval,
		since:     time.Now(),
	}
}

// Start launches the poll loop in a goroutine bound to ctx. Cancelling
// the context stops the loop.
func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "poller"),
		zap.String("recipient", p.recipient),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("notification poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx, log)
		}
	}
}

func (p *Poller) poll(ctx context.Context, log *zap.Logger) {
	batch, err := p.fetch(ctx, p.since, p.recipient)
	if err != nil {
		log.Warn("notification fetch failed", zap.Error(err))
		return
	}
	if len(batch) == 0 {
		return
	}

	for _, n := range batch {
		if n.CreatedAt.After(p.since) {
			p.since = n.CreatedAt
		}
	}
	p.handler(batch)
}
