package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProviderHealth reports on a constructed AI provider client.
type ProviderHealth interface {
	Name() string
	Healthy() bool
}

// HealthHandler handles health and readiness endpoints
type HealthHandler struct {
	aiStatus  map[string]bool
	providers []ProviderHealth
	logger    *logrus.Logger
}

// HealthResponse is the health check payload. AIStatus reflects whether
// each provider client was successfully constructed at startup.
type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	AIStatus  map[string]bool `json:"ai_status"`
}

// ReadinessResponse is the readiness check payload
type ReadinessResponse struct {
	Ready     bool            `json:"ready"`
	Timestamp string          `json:"timestamp"`
	Checks    map[string]bool `json:"checks"`
}

// NewHealthHandler creates a health handler. aiStatus maps each provider
// name to whether its client was constructed; providers holds the
// constructed clients for readiness reporting.
func NewHealthHandler(aiStatus map[string]bool, providers []ProviderHealth, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		aiStatus:  aiStatus,
		providers: providers,
		logger:    logger,
	}
}

// GetHealth reports service liveness and AI client construction status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	h.logger.Debug("Health check requested")

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		AIStatus:  h.aiStatus,
	})
}

// GetReady reports whether configured AI providers are serving. A service
// with no providers configured is still ready; the rule-based tier always
// serves.
func (h *HealthHandler) GetReady(c *gin.Context) {
	h.logger.Debug("Readiness check requested")

	checks := make(map[string]bool, len(h.providers))
	for _, p := range h.providers {
		checks[p.Name()] = p.Healthy()
	}

	c.JSON(http.StatusOK, ReadinessResponse{
		Ready:     true,
		Timestamp: time.Now().Format(time.RFC3339),
		Checks:    checks,
	})
}
