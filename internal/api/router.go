package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mood-architect/affirm-api/internal/api/handlers"
	apimiddleware "github.com/mood-architect/affirm-api/internal/api/middleware"
	"github.com/mood-architect/affirm-api/internal/config"
)

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, generator handlers.Generator) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Affirmation generation
	affirmationHandler := handlers.NewAffirmationHandler(generator, cfg)
	router.POST("/api/affirmation", affirmationHandler.Generate)

	return router
}
