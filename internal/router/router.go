// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fakestore/storefront-backend/internal/accounts"
	"github.com/fakestore/storefront-backend/internal/config"
	"github.com/fakestore/storefront-backend/internal/handlers"
	"github.com/fakestore/storefront-backend/internal/middleware"
	"github.com/fakestore/storefront-backend/internal/services"
	"github.com/fakestore/storefront-backend/internal/storage"
	"github.com/fakestore/storefront-backend/internal/utils"
)

// Initialize wires services and handlers onto a gin engine. The durable store
// keeps state that survives restarts; the scoped store holds state that is
// reset with the process, like the applied coupon.
func Initialize(cfg *config.Config, catalog *services.CatalogService, durable, scoped storage.Store, repo accounts.Repository) *gin.Engine {
	// Initialize services
	sessionService := services.NewSessionService(durable, scoped)
	authService := services.NewAuthService(repo, sessionService, cfg)

	var couponService *services.CouponService
	if cfg.HasCapability(config.CapabilityCoupons) {
		couponService = services.NewCouponService(scoped)
	}
	cartService := services.NewCartService(catalog, couponService, durable)

	var listsService *services.ListsService
	if cfg.HasCapability(config.CapabilityFavorites) ||
		cfg.HasCapability(config.CapabilityViewed) ||
		cfg.HasCapability(config.CapabilityCompare) ||
		cfg.HasCapability(config.CapabilityRatings) {
		listsService = services.NewListsService(catalog, durable)
	}

	var viewTracker *services.ListsService
	if cfg.HasCapability(config.CapabilityViewed) {
		viewTracker = listsService
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalog, viewTracker)
	cartHandler := handlers.NewCartHandler(cartService, couponService)
	listsHandler := handlers.NewListsHandler(listsService, catalog)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS([]string{cfg.Frontend.BaseURL}))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"products": catalog.Len(),
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.GetSession)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
			if cfg.HasCapability(config.CapabilityRatings) {
				products.POST("/:id/rating", listsHandler.RateProduct)
			}
		}

		v1.GET("/categories", catalogHandler.GetCategories)

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.POST("/checkout", cartHandler.Checkout)
			if cfg.HasCapability(config.CapabilityCoupons) {
				cart.POST("/coupon", cartHandler.ApplyCoupon)
				cart.DELETE("/coupon", cartHandler.RemoveCoupon)
			}
		}

		// Favorites routes
		if cfg.HasCapability(config.CapabilityFavorites) {
			favorites := v1.Group("/favorites")
			{
				favorites.GET("", listsHandler.GetFavorites)
				favorites.POST("/:id/toggle", listsHandler.ToggleFavorite)
			}
		}

		// Recently viewed routes
		if cfg.HasCapability(config.CapabilityViewed) {
			v1.GET("/viewed", listsHandler.GetViewed)
		}

		// Compare routes
		if cfg.HasCapability(config.CapabilityCompare) {
			compare := v1.Group("/compare")
			{
				compare.GET("", listsHandler.GetCompare)
				compare.POST("/:id", listsHandler.AddCompare)
				compare.DELETE("/:id", listsHandler.RemoveCompare)
				compare.DELETE("", listsHandler.ClearCompare)
			}
		}
	}

	return r
}
