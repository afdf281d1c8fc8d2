// internal/services/filter_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakestore/storefront-backend/internal/models"
)

func productIDs(products []models.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterProductsNoCriteria(t *testing.T) {
	products := testProducts()

	result, err := FilterProducts(products, Criteria{})
	require.NoError(t, err)

	// Catalog order preserved, nothing dropped
	assert.Equal(t, productIDs(products), productIDs(result))
}

func TestFilterProductsSearch(t *testing.T) {
	products := testProducts()

	// Matches title, case-insensitive
	result, err := FilterProducts(products, Criteria{Search: "backpack"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, productIDs(result))

	// Matches description too
	result, err = FilterProducts(products, Criteria{Search: "USB"})
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, productIDs(result))

	result, err = FilterProducts(products, Criteria{Search: "no such thing"})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestFilterProductsCategory(t *testing.T) {
	result, err := FilterProducts(testProducts(), Criteria{Category: "electronics"})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5}, productIDs(result))
}

func TestFilterProductsMaxPrice(t *testing.T) {
	// Ceiling is inclusive
	max := 64.00
	result, err := FilterProducts(testProducts(), Criteria{MaxPrice: &max})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, productIDs(result))
}

func TestFilterProductsMinRating(t *testing.T) {
	result, err := FilterProducts(testProducts(), Criteria{MinRating: 4.0})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, productIDs(result))
}

func TestFilterProductsCombined(t *testing.T) {
	max := 100.00
	result, err := FilterProducts(testProducts(), Criteria{
		Category: "electronics",
		MaxPrice: &max,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, productIDs(result))
}

func TestFilterProductsSortPrice(t *testing.T) {
	result, err := FilterProducts(testProducts(), Criteria{Sort: SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, productIDs(result))

	result, err = FilterProducts(testProducts(), Criteria{Sort: SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 1, 4, 2}, productIDs(result))
}

func TestFilterProductsSortName(t *testing.T) {
	result, err := FilterProducts(testProducts(), Criteria{Sort: SortNameAsc})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 1, 3, 2, 4}, productIDs(result))

	result, err = FilterProducts(testProducts(), Criteria{Sort: SortNameDesc})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2, 3, 1, 5}, productIDs(result))
}

func TestFilterProductsInStockUnsupported(t *testing.T) {
	_, err := FilterProducts(testProducts(), Criteria{InStockOnly: true})
	assert.ErrorIs(t, err, ErrUnsupportedFilter)
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	original := productIDs(products)

	_, err := FilterProducts(products, Criteria{Sort: SortPriceDesc})
	require.NoError(t, err)

	assert.Equal(t, original, productIDs(products))
}
