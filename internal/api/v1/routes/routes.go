package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ahitagnied/lotus-app/internal/api/v1/handlers"
)

// HandlerContainer holds all handlers exposed by the API
type HandlerContainer struct {
	Transcription *handlers.TranscriptionHandler
	Health        *handlers.HealthHandler
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router gin.IRouter, container *HandlerContainer) {
	router.GET("/health", container.Health.Check)

	// Trailing slash is part of the public contract
	router.POST("/transcribe/", container.Transcription.Transcribe)
}
