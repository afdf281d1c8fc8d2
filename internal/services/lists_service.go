// internal/services/lists_service.go
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/fakestore/storefront-backend/internal/storage"
)

const (
	maxViewed  = 10
	maxCompare = 3
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ListsService manages the auxiliary product-id lists: favorites (a set),
// viewed (most-recent-first, capped), compare (capped), and the profile's own
// product ratings. Each list persists after every mutation.
type ListsService struct {
	catalog *CatalogService
	store   storage.Store
	mu      sync.Mutex
}

func NewListsService(catalog *CatalogService, store storage.Store) *ListsService {
	return &ListsService{catalog: catalog, store: store}
}

// ToggleFavorite removes id when present, adds it otherwise. Reports whether
// the id is a favorite afterwards.
func (s *ListsService) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.loadIDs(ctx, storage.KeyFavorites)
	if err != nil {
		return false, err
	}

	for i, fav := range ids {
		if fav == id {
			ids = append(ids[:i], ids[i+1:]...)
			return false, s.saveIDs(ctx, storage.KeyFavorites, ids)
		}
	}

	ids = append(ids, id)
	return true, s.saveIDs(ctx, storage.KeyFavorites, ids)
}

func (s *ListsService) Favorites(ctx context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadIDs(ctx, storage.KeyFavorites)
}

// TrackView inserts id at the front of the viewed list when absent, dropping
// the oldest entry past the cap. A repeat view does not reorder the list.
func (s *ListsService) TrackView(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.loadIDs(ctx, storage.KeyViewed)
	if err != nil {
		return err
	}

	for _, seen := range ids {
		if seen == id {
			return nil
		}
	}

	ids = append([]int64{id}, ids...)
	if len(ids) > maxViewed {
		ids = ids[:maxViewed]
	}
	return s.saveIDs(ctx, storage.KeyViewed, ids)
}

func (s *ListsService) Viewed(ctx context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadIDs(ctx, storage.KeyViewed)
}

// AddCompare appends id to the compare set. Already present or a full set is
// a no-op; the returned bool reports whether the id is in the set afterwards.
func (s *ListsService) AddCompare(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.loadIDs(ctx, storage.KeyCompare)
	if err != nil {
		return false, err
	}

	for _, c := range ids {
		if c == id {
			return true, nil
		}
	}
	if len(ids) >= maxCompare {
		return false, nil
	}

	ids = append(ids, id)
	return true, s.saveIDs(ctx, storage.KeyCompare, ids)
}

func (s *ListsService) RemoveCompare(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.loadIDs(ctx, storage.KeyCompare)
	if err != nil {
		return err
	}

	for i, c := range ids {
		if c == id {
			ids = append(ids[:i], ids[i+1:]...)
			return s.saveIDs(ctx, storage.KeyCompare, ids)
		}
	}
	return nil
}

func (s *ListsService) ClearCompare(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveIDs(ctx, storage.KeyCompare, []int64{})
}

func (s *ListsService) Compare(ctx context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadIDs(ctx, storage.KeyCompare)
}

// Rate stores the profile's own rating for a catalog product.
func (s *ListsService) Rate(ctx context.Context, id int64, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if _, ok := s.catalog.Product(id); !ok {
		return ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ratings, err := s.loadRatings(ctx)
	if err != nil {
		return err
	}
	ratings[id] = rating
	return storage.PutJSON(ctx, s.store, storage.KeyRatings, ratings)
}

func (s *ListsService) Ratings(ctx context.Context) (map[int64]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadRatings(ctx)
}

func (s *ListsService) loadIDs(ctx context.Context, key string) ([]int64, error) {
	var ids []int64
	if _, err := storage.GetJSON(ctx, s.store, key, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *ListsService) saveIDs(ctx context.Context, key string, ids []int64) error {
	return storage.PutJSON(ctx, s.store, key, ids)
}

func (s *ListsService) loadRatings(ctx context.Context) (map[int64]int, error) {
	ratings := make(map[int64]int)
	if _, err := storage.GetJSON(ctx, s.store, storage.KeyRatings, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
