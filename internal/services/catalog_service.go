// internal/services/catalog_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fakestore/storefront-backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService holds the product catalog fetched once at startup from the
// upstream feed. The catalog is read-only after Load; every accessor returns
// copies so callers can never mutate it.
type CatalogService struct {
	url    string
	client *http.Client

	mu       sync.RWMutex
	products []models.Product
	byID     map[int64]models.Product
}

func NewCatalogService(url string, client *http.Client) *CatalogService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CatalogService{
		url:    url,
		client: client,
		byID:   make(map[int64]models.Product),
	}
}

// Load fetches the catalog. A failed fetch leaves the catalog empty; the
// caller decides whether that is fatal (it is not at startup).
func (s *CatalogService) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return fmt.Errorf("failed to decode catalog: %w", err)
	}

	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.mu.Unlock()

	logrus.WithField("products", len(products)).Info("Catalog loaded")
	return nil
}

// Products returns the full catalog in feed order.
func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogService) Product(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok
}

// ProductsByIDs resolves ids against the catalog, silently skipping dangling
// references.
func (s *CatalogService) ProductsByIDs(ids []int64) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

func (s *CatalogService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
