// internal/services/cart_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakestore/storefront-backend/internal/models"
	"github.com/fakestore/storefront-backend/internal/storage"
	"github.com/fakestore/storefront-backend/internal/utils"
)

var ErrCartEmpty = errors.New("cart is empty")

// CartService is the cart ledger: product id to quantity, persisted
// synchronously after every mutation. Totals always use current catalog
// prices; prices are not frozen at add time.
type CartService struct {
	catalog *CatalogService
	coupons *CouponService // nil when the coupons capability is disabled
	store   storage.Store
	mu      sync.Mutex
}

// CartItem is one ledger entry joined with its catalog product.
type CartItem struct {
	Product   models.Product  `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the rendered cart: entries resolved against the catalog
// (dangling references skipped), totals, and the active discount.
type CartView struct {
	Items         []CartItem      `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Coupon        *models.Coupon  `json:"coupon,omitempty"`
}

// Order is the result of a successful checkout. There is no real payment
// processing; the reference is for display only.
type Order struct {
	Reference string          `json:"reference"`
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Coupon    *models.Coupon  `json:"coupon,omitempty"`
	PlacedAt  time.Time       `json:"placed_at"`
}

func NewCartService(catalog *CatalogService, coupons *CouponService, store storage.Store) *CartService {
	return &CartService{
		catalog: catalog,
		coupons: coupons,
		store:   store,
	}
}

// Add increments the entry for id by 1, inserting it with quantity 1 when
// absent. Ids unknown to the catalog are a silent no-op.
func (s *CartService) Add(ctx context.Context, id int64) error {
	if _, ok := s.catalog.Product(id); !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].ProductID == id {
			entries[i].Quantity++
			return s.save(ctx, entries)
		}
	}

	entries = append(entries, models.CartEntry{ProductID: id, Quantity: 1})
	return s.save(ctx, entries)
}

// SetQuantity updates an existing entry's quantity. n <= 0 removes the entry;
// entries are never created through this path.
func (s *CartService) SetQuantity(ctx context.Context, id int64, n int) error {
	if n <= 0 {
		return s.Remove(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].ProductID == id {
			entries[i].Quantity = n
			return s.save(ctx, entries)
		}
	}
	return nil
}

// Remove deletes the entry for id if present.
func (s *CartService) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ProductID != id {
			kept = append(kept, e)
		}
	}
	return s.save(ctx, kept)
}

// Clear empties the ledger.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, []models.CartEntry{})
}

// Entries returns the raw ledger.
func (s *CartService) Entries(ctx context.Context) ([]models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Total sums current catalog price times quantity over all entries. Entries
// whose product no longer exists in the catalog are skipped.
func (s *CartService) Total(ctx context.Context) (decimal.Decimal, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return s.subtotal(entries), nil
}

// View renders the cart with catalog details and the active discount.
func (s *CartService) View(ctx context.Context) (*CartView, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, entries), nil
}

// Checkout requires a non-empty ledger; on success it clears the ledger and
// returns the order summary.
func (s *CartService) Checkout(ctx context.Context) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrCartEmpty
	}

	view := s.buildView(ctx, entries)

	reference, err := utils.GenerateOrderReference()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order reference: %w", err)
	}

	if err := s.save(ctx, []models.CartEntry{}); err != nil {
		return nil, err
	}

	return &Order{
		Reference: reference,
		Items:     view.Items,
		Subtotal:  view.Subtotal,
		Discount:  view.Discount,
		Total:     view.Total,
		Coupon:    view.Coupon,
		PlacedAt:  time.Now(),
	}, nil
}

func (s *CartService) buildView(ctx context.Context, entries []models.CartEntry) *CartView {
	view := &CartView{
		Items:    make([]CartItem, 0, len(entries)),
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
	}

	for _, e := range entries {
		view.TotalQuantity += e.Quantity
		product, ok := s.catalog.Product(e.ProductID)
		if !ok {
			continue
		}
		lineTotal := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(e.Quantity)))
		view.Items = append(view.Items, CartItem{
			Product:   product,
			Quantity:  e.Quantity,
			LineTotal: lineTotal,
		})
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	if s.coupons != nil {
		if coupon, ok := s.coupons.Active(ctx); ok {
			view.Coupon = &coupon
			view.Discount = s.coupons.Discount(ctx, view.Subtotal)
		}
	}
	view.Total = view.Subtotal.Sub(view.Discount)
	return view
}

func (s *CartService) subtotal(entries []models.CartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		product, ok := s.catalog.Product(e.ProductID)
		if !ok {
			continue
		}
		total = total.Add(decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}

func (s *CartService) load(ctx context.Context) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	if _, err := storage.GetJSON(ctx, s.store, storage.KeyCart, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *CartService) save(ctx context.Context, entries []models.CartEntry) error {
	return storage.PutJSON(ctx, s.store, storage.KeyCart, entries)
}
