// internal/models/state.go
package models

import "github.com/shopspring/decimal"

// CartEntry maps a catalog product to a quantity. Quantities are always >= 1;
// an entry whose quantity drops to zero is removed, never kept at zero.
type CartEntry struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CouponKind string

const (
	CouponKindPercentage CouponKind = "percentage"
	CouponKindShipping   CouponKind = "shipping"
)

// Coupon is a named discount rule. Percentage coupons take Discount percent
// off the cart total; shipping coupons credit up to Discount, capped at the
// total.
type Coupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Kind     CouponKind      `json:"kind"`
}

// SessionUser is the public slice of an account carried in a session record.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the record of the currently authenticated identity. Timestamp is
// Unix milliseconds at login. RememberMe records the durability choice.
type Session struct {
	User       SessionUser `json:"user"`
	Timestamp  int64       `json:"timestamp"`
	RememberMe bool        `json:"rememberMe"`
}
