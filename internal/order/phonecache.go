package order

import (
	"context"

	"candyshop-be/internal/kvstore"
	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

// PhoneCache remembers the phone number an owner last checked out with;
// "my orders" views filter by it, there is no authenticated ownership model.
type PhoneCache struct {
	kv kvstore.Store
}

func NewPhoneCache(kv kvstore.Store) *PhoneCache {
	return &PhoneCache{kv: kv}
}

func phoneKey(owner string) string {
	return "checkoutPhone:" + owner
}

// Set stores the phone best-effort; a write failure is logged only.
func (c *PhoneCache) Set(ctx context.Context, owner, phone string) {
	if err := c.kv.Set(ctx, phoneKey(owner), []byte(phone)); err != nil {
		logger.FromCtx(ctx).Warn("failed to cache checkout phone",
			zap.String("owner", owner),
			zap.Error(err),
		)
	}
}

// Get returns the cached phone, empty when never set.
func (c *PhoneCache) Get(ctx context.Context, owner string) (string, error) {
	blob, err := c.kv.Get(ctx, phoneKey(owner))
	if err == kvstore.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(blob), nil
}
