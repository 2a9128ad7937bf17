package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodstock-inventory/internal/server/handler"
	"github.com/foodstock-inventory/internal/server/middleware"
)

// setupRouter configures API routes and middleware for the application.
// Everything under /api/v1 is reachable only with a valid token; the
// health check stays open.
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	jwtSecret []byte,
	productHandler *handler.ProductHandler,
	transactionHandler *handler.TransactionHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Authenticated(jwtSecret))
	{
		// Catalog operations
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.GET("/report", productHandler.Report)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		// Ledger operations
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.POST("", transactionHandler.Create)
			transactions.GET("/report", transactionHandler.Report)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
