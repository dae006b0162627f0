package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pitchside/fantasy-cricket-ai/internal/advisor"
)

// QuickActionHandler serves the static quick-action payloads
type QuickActionHandler struct {
	logger *logrus.Logger
}

// NewQuickActionHandler creates a new quick action handler
func NewQuickActionHandler(logger *logrus.Logger) *QuickActionHandler {
	return &QuickActionHandler{logger: logger}
}

// GetQuickAction returns the canned payload for a quick-action button.
func (h *QuickActionHandler) GetQuickAction(c *gin.Context) {
	action := c.Param("action")

	data, err := advisor.QuickAction(action)
	if err != nil {
		if errors.Is(err, advisor.ErrUnknownAction) {
			h.logger.WithField("action", action).Warn("Unknown quick action requested")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
			return
		}
		h.logger.WithError(err).Error("Quick action failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
