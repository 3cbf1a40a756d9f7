package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/tunestream/tunes-api/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		// Catalog endpoints (public read access)
		api.GET("/songs", handler.ListSongs)
		api.GET("/songs/:id", handler.GetSong)

		// Subscription endpoints (open; Subscribe self-verifies against the chain)
		api.GET("/subscription/:address", handler.GetSubscription)
		api.POST("/subscribe", handler.Subscribe)

		// Play endpoints (open; RecordPlay enforces the tier gate itself)
		api.POST("/play", handler.RecordPlay)
		api.GET("/history/:address", handler.GetHistory)

		// Admin endpoints (requires authentication)
		admin := api.Group("/admin", middleware.Auth(authCfg))
		{
			admin.POST("/songs", handler.AddSong)
			admin.DELETE("/songs/:id", handler.DeleteSong)
			admin.GET("/stats", handler.GetStats)
		}
	}
}
