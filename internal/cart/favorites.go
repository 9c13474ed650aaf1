package cart

import (
	"context"
	"encoding/json"
	"sync"

	"candyshop-be/internal/kvstore"
	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

// FavoritesStore keeps each owner's favorite products, unique by product id.
type FavoritesStore struct {
	kv kvstore.Store

	mu        sync.Mutex
	favorites map[string][]Favorite
}

func NewFavoritesStore(kv kvstore.Store) *FavoritesStore {
	return &FavoritesStore{
		kv:        kv,
		favorites: make(map[string][]Favorite),
	}
}

func favoritesKey(owner string) string {
	return "favorites:" + owner
}

func (s *FavoritesStore) List(ctx context.Context, owner string) ([]Favorite, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]Favorite, len(favs))
	copy(out, favs)
	return out, nil
}

// Add is idempotent; adding an existing favorite changes nothing.
func (s *FavoritesStore) Add(ctx context.Context, owner string, fav Favorite) error {
	if owner == "" {
		return ErrMissingOwner
	}
	if fav.ProductID == 0 {
		return ErrMissingProductID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.load(ctx, owner)
	if err != nil {
		return err
	}

	for _, f := range favs {
		if f.ProductID == fav.ProductID {
			return nil
		}
	}

	s.favorites[owner] = append(favs, fav)
	s.persist(ctx, owner)
	return nil
}

func (s *FavoritesStore) Remove(ctx context.Context, owner string, productID uint) error {
	if owner == "" {
		return ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.load(ctx, owner)
	if err != nil {
		return err
	}

	for i, f := range favs {
		if f.ProductID == productID {
			s.favorites[owner] = append(favs[:i], favs[i+1:]...)
			s.persist(ctx, owner)
			return nil
		}
	}
	return nil
}

func (s *FavoritesStore) IsFavorite(ctx context.Context, owner string, productID uint) (bool, error) {
	if owner == "" {
		return false, ErrMissingOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.load(ctx, owner)
	if err != nil {
		return false, err
	}

	for _, f := range favs {
		if f.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *FavoritesStore) load(ctx context.Context, owner string) ([]Favorite, error) {
	if favs, ok := s.favorites[owner]; ok {
		return favs, nil
	}

	var favs []Favorite
	blob, err := s.kv.Get(ctx, favoritesKey(owner))
	switch err {
	case nil:
		if err := json.Unmarshal(blob, &favs); err != nil {
			logger.FromCtx(ctx).Warn("discarding corrupt favorites blob",
				zap.String("owner", owner),
				zap.Error(err),
			)
			favs = nil
		}
	case kvstore.ErrNotFound:
	default:
		return nil, err
	}

	s.favorites[owner] = favs
	return favs, nil
}

func (s *FavoritesStore) persist(ctx context.Context, owner string) {
	blob, err := json.Marshal(s.favorites[owner])
	if err == nil {
		err = s.kv.Set(ctx, favoritesKey(owner), blob)
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to persist favorites",
			zap.String("owner", owner),
			zap.Error(err),
		)
	}
}
