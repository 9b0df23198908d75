package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/corebank-ledger/internal/api/handler"
	"github.com/corebank-ledger/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	customerHandler *handler.CustomerHandler,
	accountHandler *handler.AccountHandler,
	transferHandler *handler.TransferHandler,
	systemHandler *handler.SystemHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Customer directory
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
			customers.GET("", customerHandler.List)
			customers.GET("/:id", customerHandler.GetByID)
		}

		// Account operations
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.Create)
			accounts.GET("/:number", accountHandler.GetByNumber)
			accounts.GET("/:number/transactions", accountHandler.GetTransactions)
			accounts.POST("/:number/deposits", accountHandler.Deposit)
			accounts.POST("/:number/withdrawals", accountHandler.Withdraw)
		}

		// Transfer protocol
		v1.POST("/transfers", transferHandler.Create)

		// Maintenance sweep and event log
		v1.POST("/maintenance", systemHandler.RunMaintenance)
		v1.GET("/events", systemHandler.GetEvents)
		v1.DELETE("/events", systemHandler.ResetEvents)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
