// internal/services/coupon_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fakestore/storefront-backend/internal/models"
	"github.com/fakestore/storefront-backend/internal/storage"
)

var ErrUnknownCoupon = errors.New("unknown coupon code")

// CouponService matches codes against a fixed set of known coupons and keeps
// the single active one. The active coupon lives in the context-scoped store:
// like the original storefront, it does not survive a restart.
type CouponService struct {
	store storage.Store
	known []models.Coupon
	mu    sync.Mutex
}

// knownCoupons is the storefront's fixed coupon set.
func knownCoupons() []models.Coupon {
	return []models.Coupon{
		{Code: "DESCUENTO10", Discount: decimal.NewFromInt(10), Kind: models.CouponKindPercentage},
		{Code: "ENVIOGRATIS", Discount: decimal.NewFromInt(5), Kind: models.CouponKindShipping},
	}
}

func NewCouponService(store storage.Store) *CouponService {
	return &CouponService{store: store, known: knownCoupons()}
}

// Apply activates the coupon matching code (case-insensitive). On no match
// the active coupon is left unchanged.
func (s *CouponService) Apply(ctx context.Context, code string) (models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.known {
		if strings.EqualFold(c.Code, strings.TrimSpace(code)) {
			if err := storage.PutJSON(ctx, s.store, storage.KeyCoupon, c); err != nil {
				return models.Coupon{}, err
			}
			return c, nil
		}
	}
	return models.Coupon{}, ErrUnknownCoupon
}

// Remove clears the active coupon unconditionally.
func (s *CouponService) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, storage.KeyCoupon)
}

// Active returns the active coupon, if any.
func (s *CouponService) Active(ctx context.Context) (models.Coupon, bool) {
	var c models.Coupon
	ok, err := storage.GetJSON(ctx, s.store, storage.KeyCoupon, &c)
	if err != nil {
		logrus.WithError(err).Warn("Failed to read active coupon, treating as none")
		return models.Coupon{}, false
	}
	return c, ok
}

// Discount computes the active coupon's discount for total. Percentage
// coupons take discount percent of the total; shipping coupons credit up to
// the fixed amount, capped at the total so it never goes below zero. No
// active coupon discounts nothing.
func (s *CouponService) Discount(ctx context.Context, total decimal.Decimal) decimal.Decimal {
	c, ok := s.Active(ctx)
	if !ok {
		return decimal.Zero
	}

	switch c.Kind {
	case models.CouponKindPercentage:
		return total.Mul(c.Discount).Div(decimal.NewFromInt(100))
	case models.CouponKindShipping:
		return decimal.Min(c.Discount, total)
	}
	return decimal.Zero
}
