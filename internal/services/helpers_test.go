// internal/services/helpers_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fakestore/storefront-backend/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Fjallraven Backpack", Description: "Fits 15 inch laptops", Category: "men's clothing", Price: 109.95, Rating: &models.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "Mens Casual T-Shirt", Description: "Slim fitting style", Category: "men's clothing", Price: 22.30, Rating: &models.Rating{Rate: 4.1, Count: 259}},
		{ID: 3, Title: "Gold Petite Micropave", Description: "Classic created ring", Category: "jewelery", Price: 168.00, Rating: &models.Rating{Rate: 3.9, Count: 70}},
		{ID: 4, Title: "WD 2TB External Drive", Description: "USB 3.0 portable storage", Category: "electronics", Price: 64.00, Rating: &models.Rating{Rate: 4.8, Count: 400}},
		{ID: 5, Title: "Acer Monitor", Description: "21.5 inch full hd screen", Category: "electronics", Price: 200.00, Rating: &models.Rating{Rate: 2.9, Count: 250}},
	}
}

// newTestCatalog serves products over an httptest server and returns a loaded
// catalog service.
func newTestCatalog(t *testing.T, products []models.Product) *CatalogService {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}))
	t.Cleanup(srv.Close)

	catalog := NewCatalogService(srv.URL, srv.Client())
	require.NoError(t, catalog.Load(context.Background()))
	return catalog
}
