package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nirvana-admin-backend/internal/shared/middleware"
	"nirvana-admin-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		// Every admin surface sits behind auth + role gate. Credentials are
		// stashed on the request context so upstream calls carry them.
		admin := api.Group("")
		admin.Use(
			middleware.AuthMiddleware(c.JWTManager),
			middleware.AdminMiddleware(),
		)
		{
			c.ReturnHandler.RegisterRoutes(admin)
			c.OrderHandler.RegisterRoutes(admin)
			c.ProductHandler.RegisterRoutes(admin)
			c.CustomerHandler.RegisterRoutes(admin)
			c.AnalyticsHandler.RegisterRoutes(admin)
		}
	}

	return router
}

// ========================================
// HEALTH CHECK
// ========================================

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"upstream":    c.UpstreamClient.BaseURL(),
			"checks":      c.HealthCheck(checkCtx),
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
