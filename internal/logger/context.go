package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stamps the request id onto the context for FromCtx to pick up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request id carried by ctx, or "" when absent.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromCtx returns the global logger annotated with the context's request id,
// when one is present.
func FromCtx(ctx context.Context) *zap.Logger {
	id := RequestIDFrom(ctx)
	if id == "" {
		return L()
	}
	return L().With(zap.String("request_id", id))
}
