package cart

import (
	"context"
	"encoding/json"
	"sync"

	"candyshop-be/internal/kvstore"
	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

// Store holds one cart per owner (the shopper's phone or device id). Carts
// live in memory and are written through to the key-value store after every
// mutation; a failed write is logged and the in-memory state stands.
type Store struct {
	kv kvstore.Store

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{
		kv:    kv,
		carts: make(map[string]*Cart),
	}
}

func cartKey(owner string) string {
	return "cart:" + owner
}

// Get returns the owner's cart, hydrating from the key-value store on first
// access. A missing cart is an empty cart.
func (s *Store) Get(ctx context.Context, owner string) (*Cart, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.clone(), nil
}

// AddItem merges quantity into an existing line or inserts a new one. The
// cart is left unchanged when the total quantity would exceed MaxUnits.
func (s *Store) AddItem(ctx context.Context, owner string, item Line) (*Cart, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}
	if item.ProductID == 0 {
		return nil, ErrMissingProductID
	}
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	if c.Units()+item.Quantity > MaxUnits {
		return c.clone(), ErrLimitExceeded
	}

	if line := c.line(item.ProductID); line != nil {
		line.Quantity += item.Quantity
	} else {
		c.Lines = append(c.Lines, item)
	}

	s.persist(ctx, owner, c)
	return c.clone(), nil
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, owner string, productID uint, qty int) (*Cart, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	line := c.line(productID)
	if line == nil {
		return c.clone(), ErrLineNotFound
	}

	if qty <= 0 {
		c.remove(productID)
	} else {
		if c.Units()-line.Quantity+qty > MaxUnits {
			return c.clone(), ErrLimitExceeded
		}
		line.Quantity = qty
	}

	s.persist(ctx, owner, c)
	return c.clone(), nil
}

// RemoveItem deletes a line unconditionally; removing an absent line is a no-op.
func (s *Store) RemoveItem(ctx context.Context, owner string, productID uint) (*Cart, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	if c.remove(productID) {
		s.persist(ctx, owner, c)
	}
	return c.clone(), nil
}

// Clear empties the owner's cart.
func (s *Store) Clear(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[owner] = &Cart{}
	if err := s.kv.Delete(ctx, cartKey(owner)); err != nil {
		logger.FromCtx(ctx).Warn("failed to clear persisted cart",
			zap.String("owner", owner),
			zap.Error(err),
		)
	}
	return nil
}

// load must be called with the mutex held.
func (s *Store) load(ctx context.Context, owner string) (*Cart, error) {
	if c, ok := s.carts[owner]; ok {
		return c, nil
	}

	c := &Cart{}
	blob, err := s.kv.Get(ctx, cartKey(owner))
	switch err {
	case nil:
		if err := json.Unmarshal(blob, c); err != nil {
			logger.FromCtx(ctx).Warn("discarding corrupt cart blob",
				zap.String("owner", owner),
				zap.Error(err),
			)
			c = &Cart{}
		}
	case kvstore.ErrNotFound:
		// first load, empty cart
	default:
		return nil, err
	}

	s.carts[owner] = c
	return c, nil
}

// persist writes through to the key-value store. Failures are logged only;
// there is no rollback or retry.
func (s *Store) persist(ctx context.Context, owner string, c *Cart) {
	blob, err := json.Marshal(c)
	if err == nil {
		err = s.kv.Set(ctx, cartKey(owner), blob)
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to persist cart",
			zap.String("owner", owner),
			zap.Error(err),
		)
	}
}

func (c *Cart) remove(productID uint) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}
