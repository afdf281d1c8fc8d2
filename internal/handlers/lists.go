// internal/handlers/lists.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fakestore/storefront-backend/internal/i18n"
	"github.com/fakestore/storefront-backend/internal/services"
	"github.com/fakestore/storefront-backend/internal/utils"
)

type ListsHandler struct {
	listsService   *services.ListsService
	catalogService *services.CatalogService
}

func NewListsHandler(listsService *services.ListsService, catalogService *services.CatalogService) *ListsHandler {
	return &ListsHandler{
		listsService:   listsService,
		catalogService: catalogService,
	}
}

// POST /favorites/:id/toggle
func (h *ListsHandler) ToggleFavorite(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	favorited, err := h.listsService.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id": id,
		"favorited":  favorited,
	})
}

// GET /favorites
func (h *ListsHandler) GetFavorites(c *gin.Context) {
	ids, err := h.listsService.Favorites(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": h.catalogService.ProductsByIDs(ids),
	})
}

// GET /viewed
func (h *ListsHandler) GetViewed(c *gin.Context) {
	ids, err := h.listsService.Viewed(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": h.catalogService.ProductsByIDs(ids),
	})
}

// POST /compare/:id
func (h *ListsHandler) AddCompare(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	added, err := h.listsService.AddCompare(c.Request.Context(), id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id": id,
		"comparing":  added,
	})
}

// DELETE /compare/:id
func (h *ListsHandler) RemoveCompare(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	if err := h.listsService.RemoveCompare(c.Request.Context(), id); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id": id,
		"comparing":  false,
	})
}

// DELETE /compare
func (h *ListsHandler) ClearCompare(c *gin.Context) {
	if err := h.listsService.ClearCompare(c.Request.Context()); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": []interface{}{},
	})
}

// GET /compare
func (h *ListsHandler) GetCompare(c *gin.Context) {
	ids, err := h.listsService.Compare(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": h.catalogService.ProductsByIDs(ids),
	})
}

// POST /products/:id/rating
func (h *ListsHandler) RateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := h.productID(c)
	if !ok {
		return
	}

	var req struct {
		Rating int `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.listsService.Rate(c.Request.Context(), id, req.Rating); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		if errors.Is(err, services.ErrInvalidRating) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id": id,
		"rating":     req.Rating,
	})
}

func (h *ListsHandler) productID(c *gin.Context) (int64, bool) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"), nil)
		return 0, false
	}
	return id, true
}
