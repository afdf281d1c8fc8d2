// internal/handlers/cart.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fakestore/storefront-backend/internal/i18n"
	"github.com/fakestore/storefront-backend/internal/services"
	"github.com/fakestore/storefront-backend/internal/utils"
)

type CartHandler struct {
	cartService   *services.CartService
	couponService *services.CouponService // nil when coupons are disabled
}

func NewCartHandler(cartService *services.CartService, couponService *services.CouponService) *CartHandler {
	return &CartHandler{
		cartService:   cartService,
		couponService: couponService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.cartService.View(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": view,
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		ProductID int64 `json:"product_id" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.cartService.Add(c.Request.Context(), req.ProductID); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	view, err := h.cartService.View(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": view,
	})
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"), nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.cartService.SetQuantity(c.Request.Context(), id, req.Quantity); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	view, err := h.cartService.View(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": view,
	})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"), nil)
		return
	}

	if err := h.cartService.Remove(c.Request.Context(), id); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	view, err := h.cartService.View(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": view,
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	view, err := h.cartService.View(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": view,
	})
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	order, err := h.cartService.Checkout(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCheckoutSuccess),
		"order":   order,
	})
}

// POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		Code string `json:"code" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	coupon, err := h.couponService.Apply(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCoupon) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCouponInvalid), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	view, err := h.cartService.View(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCouponApplied, coupon.Code),
		"coupon":  coupon,
		"cart":    view,
	})
}

// DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.couponService.Remove(c.Request.Context()); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	view, err := h.cartService.View(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCouponRemoved),
		"cart":    view,
	})
}
