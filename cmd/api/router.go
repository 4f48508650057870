package main

import (
	"context"
	"net/http"
	"time"

	"smartshop-backend/internal/shared/middleware"
	"smartshop-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
		setupReviewRoutes(v1, c)
		setupCartRoutes(v1, c)
		setupWalletRoutes(v1, c)
		setupContactRoutes(v1, c)
	}

	return router
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.GET("", c.CatalogHandler.ListProducts)
		products.GET("/categories", c.CatalogHandler.ListCategories)
		products.GET("/:id", c.CatalogHandler.GetProduct)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	{
		reviews.GET("", c.ReviewHandler.ListReviews)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.DELETE("", c.CartHandler.ClearCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PUT("/items/:product_id", c.CartHandler.UpdateItemQuantity)
		cart.DELETE("/items/:product_id", c.CartHandler.RemoveItem)
		cart.POST("/coupon", c.CartHandler.ApplyCoupon)
		cart.POST("/checkout", c.CartHandler.Checkout)
	}
}

// ========================================
// WALLET ROUTES
// ========================================
func setupWalletRoutes(v1 *gin.RouterGroup, c *container.Container) {
	wallet := v1.Group("/wallet")
	{
		wallet.GET("", c.WalletHandler.GetBalance)
		wallet.POST("/add-funds", c.WalletHandler.AddFunds)
	}
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/contact", c.ContactHandler.SubmitMessage)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		storageStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.Storage.Ping(ctx); err != nil {
			storageStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"storage": storageStatus,
			"catalog": gin.H{"products": appCtx.CatalogService.Size()},
		}

		c.JSON(http.StatusOK, health)
	}
}
