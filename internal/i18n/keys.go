// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailTaken         = "auth.email_taken"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthNoSession          = "auth.no_session"

	// Catalog
	KeyProductNotFound   = "product.not_found"
	KeyFilterUnsupported = "filter.unsupported"

	// Cart
	KeyCartEmpty           = "cart.empty"
	KeyCartCheckoutSuccess = "cart.checkout_success"

	// Coupons
	KeyCouponInvalid = "coupon.invalid"
	KeyCouponApplied = "coupon.applied"
	KeyCouponRemoved = "coupon.removed"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
)
