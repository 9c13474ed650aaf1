package notification

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"candyshop-be/internal/logger"
)

type Service interface {
	Send(ctx context.Context, input SendInput) (*Notification, error)
	List(ctx context.Context) ([]Notification, error)
	NewSince(ctx context.Context, since time.Time, recipient string) ([]Notification, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Send(ctx context.Context, input SendInput) (*Notification, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Send"),
	)

	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" {
		return nil, ErrMissingTitle
	}
	if message == "" {
		return nil, ErrMissingMessage
	}

	target := input.Target
	if target == "" {
		target = TargetAll
	}
	switch target {
	case TargetAll:
	case TargetSpecific:
		if len(input.TargetIDs) == 0 {
			return nil, ErrMissingTargets
		}
	default:
		return nil, ErrInvalidTarget
	}

	n := &Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Category:  input.Category,
		Target:    target,
		TargetIDs: input.TargetIDs,
		ActionURL: input.ActionURL,
	}

	log.Info("sending notification",
		zap.String("target", target),
		zap.Int("recipients", len(input.TargetIDs)),
	)
	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

func (s *service) NewSince(ctx context.Context, since time.Time, recipient string) ([]Notification, error) {
	return s.repo.NewSince(ctx, since, recipient)
}
