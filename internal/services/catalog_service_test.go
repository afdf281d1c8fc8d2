// internal/services/catalog_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoad(t *testing.T) {
	catalog := newTestCatalog(t, testProducts())

	assert.Equal(t, 5, catalog.Len())

	p, ok := catalog.Product(3)
	require.True(t, ok)
	assert.Equal(t, "Gold Petite Micropave", p.Title)

	_, ok = catalog.Product(999)
	assert.False(t, ok)
}

func TestCatalogLoadUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	catalog := NewCatalogService(srv.URL, srv.Client())
	err := catalog.Load(context.Background())
	assert.Error(t, err)

	// A failed load leaves the catalog empty, not broken
	assert.Equal(t, 0, catalog.Len())
	assert.Empty(t, catalog.Products())
}

func TestCatalogCategories(t *testing.T) {
	catalog := newTestCatalog(t, testProducts())

	// Distinct, in catalog order
	assert.Equal(t, []string{"men's clothing", "jewelery", "electronics"}, catalog.Categories())
}

func TestCatalogProductsByIDs(t *testing.T) {
	catalog := newTestCatalog(t, testProducts())

	products := catalog.ProductsByIDs([]int64{4, 999, 1})
	require.Len(t, products, 2)
	assert.EqualValues(t, 4, products[0].ID)
	assert.EqualValues(t, 1, products[1].ID)
}
