package address

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"candyshop-be/internal/kvstore"
	"candyshop-be/internal/logger"
)

type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	IsDefault bool   `json:"isDefault"`
}

var (
	ErrMissingOwner  = errors.New("owner is required")
	ErrMissingStreet = errors.New("street is required")
	ErrNotFound      = errors.New("address not found")
)

// Store keeps a per-owner address book. The in-memory map is the
// source of truth; kv writes are best effort and only logged on
// failure.
type Store struct {
	kv kvstore.Store

	mu     sync.Mutex
	books  map[string][]Address
	loaded map[string]bool
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{
		kv:     kv,
		books:  make(map[string][]Address),
		loaded: make(map[string]bool),
	}
}

func bookKey(owner string) string {
	return "addresses:" + owner
}

func (s *Store) load(ctx context.Context, owner string) []Address {
	if s.loaded[owner] {
		return s.books[owner]
	}
	s.loaded[owner] = true

	raw, err := s.kv.Get(ctx, bookKey(owner))
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load address book",
			zap.String("owner", owner), zap.Error(err))
		return nil
	}

	var book []Address
	if err := json.Unmarshal(raw, &book); err != nil {
		logger.FromCtx(ctx).Warn("discarding corrupt address book",
			zap.String("owner", owner), zap.Error(err))
		return nil
	}
	s.books[owner] = book
	return book
}

func (s *Store) persist(ctx context.Context, owner string) {
	raw, err := json.Marshal(s.books[owner])
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to encode address book",
			zap.String("owner", owner), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, bookKey(owner), raw); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist address book",
			zap.String("owner", owner), zap.Error(err))
	}
}

func (s *Store) List(ctx context.Context, owner string) ([]Address, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(ctx, owner)
	out := make([]Address, len(book))
	copy(out, book)
	return out, nil
}

// Add appends an address. The first address of a book becomes the
// default; an explicit default demotes the previous one.
func (s *Store) Add(ctx context.Context, owner string, addr Address) (*Address, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}
	if strings.TrimSpace(addr.Street) == "" {
		return nil, ErrMissingStreet
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(ctx, owner)
	addr.ID = uuid.NewString()
	if len(book) == 0 {
		addr.IsDefault = true
	} else if addr.IsDefault {
		for i := range book {
			book[i].IsDefault = false
		}
	}

	s.books[owner] = append(book, addr)
	s.persist(ctx, owner)
	return &addr, nil
}

func (s *Store) Update(ctx context.Context, owner string, addr Address) (*Address, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}
	if strings.TrimSpace(addr.Street) == "" {
		return nil, ErrMissingStreet
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(ctx, owner)
	idx := -1
	for i := range book {
		if book[i].ID == addr.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	if addr.IsDefault {
		for i := range book {
			book[i].IsDefault = false
		}
	} else if book[idx].IsDefault {
		// a default entry keeps its flag unless another takes it
		addr.IsDefault = true
	}
	book[idx] = addr
	s.books[owner] = book
	s.persist(ctx, owner)
	return &addr, nil
}

func (s *Store) SetDefault(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(ctx, owner)
	found := false
	for i := range book {
		if book[i].ID == id {
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}

	for i := range book {
		book[i].IsDefault = book[i].ID == id
	}
	s.books[owner] = book
	s.persist(ctx, owner)
	return nil
}

// Delete removes an address. Deleting the default promotes the first
// remaining entry.
func (s *Store) Delete(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(ctx, owner)
	idx := -1
	for i := range book {
		if book[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	wasDefault := book[idx].IsDefault
	book = append(book[:idx], book[idx+1:]...)
	if wasDefault && len(book) > 0 {
		book[0].IsDefault = true
	}
	s.books[owner] = book
	s.persist(ctx, owner)
	return nil
}
