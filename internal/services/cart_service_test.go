// internal/services/cart_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakestore/storefront-backend/internal/models"
	"github.com/fakestore/storefront-backend/internal/storage"
)

func TestCartAddAndIncrement(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(newTestCatalog(t, testProducts()), nil, storage.NewMemoryStore())

	require.NoError(t, cart.Add(ctx, 1))
	require.NoError(t, cart.Add(ctx, 1))
	require.NoError(t, cart.Add(ctx, 2))

	entries, err := cart.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CartEntry{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, entries)
}

func TestCartAddUnknownProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(newTestCatalog(t, testProducts()), nil, storage.NewMemoryStore())

	require.NoError(t, cart.Add(ctx, 999))

	entries, err := cart.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartSetQuantity(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(newTestCatalog(t, testProducts()), nil, storage.NewMemoryStore())

	require.NoError(t, cart.Add(ctx, 1))
	require.NoError(t, cart.SetQuantity(ctx, 1, 5))

	entries, err := cart.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CartEntry{{ProductID: 1, Quantity: 5}}, entries)

	// Zero removes the entry
	require.NoError(t, cart.SetQuantity(ctx, 1, 0))
	entries, err = cart.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Never creates entries
	require.NoError(t, cart.SetQuantity(ctx, 2, 3))
	entries, err = cart.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartTotal(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(newTestCatalog(t, testProducts()), nil, storage.NewMemoryStore())

	require.NoError(t, cart.Add(ctx, 2)) // 22.30
	require.NoError(t, cart.Add(ctx, 2))
	require.NoError(t, cart.Add(ctx, 4)) // 64.00

	total, err := cart.Total(ctx)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("108.60")), "got %s", total)
}

func TestCartPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, testProducts())
	store := storage.NewMemoryStore()

	cart := NewCartService(catalog, nil, store)
	require.NoError(t, cart.Add(ctx, 1))
	require.NoError(t, cart.Add(ctx, 1))

	reloaded := NewCartService(catalog, nil, store)
	entries, err := reloaded.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CartEntry{{ProductID: 1, Quantity: 2}}, entries)
}

func TestCartViewSkipsDanglingEntries(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, testProducts())
	store := storage.NewMemoryStore()

	// An entry left over from a previous catalog snapshot
	require.NoError(t, storage.PutJSON(ctx, store, storage.KeyCart, []models.CartEntry{
		{ProductID: 1, Quantity: 1},
		{ProductID: 999, Quantity: 4},
	}))

	cart := NewCartService(catalog, nil, store)
	view, err := cart.View(ctx)
	require.NoError(t, err)

	assert.Len(t, view.Items, 1)
	assert.EqualValues(t, 1, view.Items[0].Product.ID)
	assert.Equal(t, 5, view.TotalQuantity)
	assert.True(t, view.Subtotal.Equal(decimal.RequireFromString("109.95")))
}

func TestCartViewWithCoupon(t *testing.T) {
	ctx := context.Background()
	scoped := storage.NewMemoryStore()
	coupons := NewCouponService(scoped)
	cart := NewCartService(newTestCatalog(t, testProducts()), coupons, storage.NewMemoryStore())

	require.NoError(t, cart.Add(ctx, 5)) // 200.00
	_, err := coupons.Apply(ctx, "DESCUENTO10")
	require.NoError(t, err)

	view, err := cart.View(ctx)
	require.NoError(t, err)
	require.NotNil(t, view.Coupon)
	assert.Equal(t, "DESCUENTO10", view.Coupon.Code)
	assert.True(t, view.Discount.Equal(decimal.RequireFromString("20")), "got %s", view.Discount)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("180")), "got %s", view.Total)
}

func TestCartCheckout(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(newTestCatalog(t, testProducts()), nil, storage.NewMemoryStore())

	require.NoError(t, cart.Add(ctx, 4))

	order, err := cart.Checkout(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, order.Reference)
	assert.Len(t, order.Items, 1)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("64")))

	// Checkout clears the ledger
	entries, err := cart.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartCheckoutEmpty(t *testing.T) {
	ctx := context.Background()
	cart := NewCartService(newTestCatalog(t, testProducts()), nil, storage.NewMemoryStore())

	_, err := cart.Checkout(ctx)
	assert.ErrorIs(t, err, ErrCartEmpty)
}
