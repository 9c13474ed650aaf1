package voucher

import (
	"context"
	"encoding/json"
	"sync"

	"candyshop-be/internal/kvstore"
	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

// AppliedStore tracks the single voucher each owner has applied to their
// in-progress order. Applying a second voucher while one is active is
// rejected without touching the active one.
type AppliedStore struct {
	kv kvstore.Store

	mu      sync.Mutex
	applied map[string]*Voucher
	loaded  map[string]bool
}

func NewAppliedStore(kv kvstore.Store) *AppliedStore {
	return &AppliedStore{
		kv:      kv,
		applied: make(map[string]*Voucher),
		loaded:  make(map[string]bool),
	}
}

func appliedKey(owner string) string {
	return "appliedVoucher:" + owner
}

// Applied returns the owner's active voucher, nil when none is applied.
func (s *AppliedStore) Applied(ctx context.Context, owner string) (*Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx, owner)
}

func (s *AppliedStore) Apply(ctx context.Context, owner string, v *Voucher) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return err
	}
	if current != nil {
		return ErrAlreadyApplied
	}

	s.applied[owner] = v
	s.persist(ctx, owner, v)
	return nil
}

func (s *AppliedStore) Remove(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotApplied
	}

	s.applied[owner] = nil
	if err := s.kv.Delete(ctx, appliedKey(owner)); err != nil {
		logger.FromCtx(ctx).Warn("failed to remove persisted voucher",
			zap.String("owner", owner),
			zap.Error(err),
		)
	}
	return nil
}

func (s *AppliedStore) load(ctx context.Context, owner string) (*Voucher, error) {
	if s.loaded[owner] {
		return s.applied[owner], nil
	}

	blob, err := s.kv.Get(ctx, appliedKey(owner))
	switch err {
	case nil:
		var v Voucher
		if err := json.Unmarshal(blob, &v); err == nil {
			s.applied[owner] = &v
		} else {
			logger.FromCtx(ctx).Warn("discarding corrupt applied-voucher blob",
				zap.String("owner", owner),
				zap.Error(err),
			)
		}
	case kvstore.ErrNotFound:
	default:
		return nil, err
	}

	s.loaded[owner] = true
	return s.applied[owner], nil
}

func (s *AppliedStore) persist(ctx context.Context, owner string, v *Voucher) {
	blob, err := json.Marshal(v)
	if err == nil {
		err = s.kv.Set(ctx, appliedKey(owner), blob)
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to persist applied voucher",
			zap.String("owner", owner),
			zap.Error(err),
		)
	}
}
