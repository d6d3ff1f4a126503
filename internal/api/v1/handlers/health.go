package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahitagnied/lotus-app/internal/api/v1/dto"
)

// HealthHandler reports liveness and the active provider
type HealthHandler struct {
	provider string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// Check handles GET /health
// @Summary Health check
// @Description Reports liveness and the active transcription provider
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Provider:  h.provider,
		Timestamp: time.Now().Unix(),
	})
}
