// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fakestore/storefront-backend/internal/i18n"
	"github.com/fakestore/storefront-backend/internal/services"
	"github.com/fakestore/storefront-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	listsService   *services.ListsService // nil when viewed tracking is disabled
}

func NewCatalogHandler(catalogService *services.CatalogService, listsService *services.ListsService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		listsService:   listsService,
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	criteria, err := parseCriteria(c)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "query"), err.Error())
		return
	}

	products, err := services.FilterProducts(h.catalogService.Products(), criteria)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFilter) {
			utils.ErrorResponse(c, http.StatusBadRequest, "UNSUPPORTED_FILTER",
				i18n.T(lang, i18n.KeyFilterUnsupported), nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"), nil)
		return
	}

	product, ok := h.catalogService.Product(id)
	if !ok {
		utils.NotFoundResponse(c, "product")
		return
	}

	if h.listsService != nil {
		if err := h.listsService.TrackView(c.Request.Context(), id); err != nil {
			logrus.WithError(err).Warn("Failed to record product view")
		}
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
	})
}

func parseCriteria(c *gin.Context) (services.Criteria, error) {
	criteria := services.Criteria{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     services.SortKey(c.Query("sort")),
	}

	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("max_price must be a number")
		}
		criteria.MaxPrice = &v
	}

	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("min_rating must be a number")
		}
		criteria.MinRating = v
	}

	if raw := c.Query("in_stock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, errors.New("in_stock must be a boolean")
		}
		criteria.InStockOnly = v
	}

	return criteria, nil
}
