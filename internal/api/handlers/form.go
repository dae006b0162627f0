package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pitchside/fantasy-cricket-ai/internal/scoring"
)

// FormHandler exposes the form scoring engine
type FormHandler struct {
	engine *scoring.Engine
	logger *logrus.Logger
}

// FormRequest asks for a form assessment of a named player in an optional
// match context
type FormRequest struct {
	PlayerName                string `json:"player_name"`
	Venue                     string `json:"venue"`
	Opposition                bool   `json:"opposition"`
	OppositionBowlingStrength *int   `json:"opposition_bowling_strength"`
}

// NewFormHandler creates a new form handler
func NewFormHandler(engine *scoring.Engine, logger *logrus.Logger) *FormHandler {
	return &FormHandler{
		engine: engine,
		logger: logger,
	}
}

// GetPlayerForm scores a player against the supplied match context. An
// unknown player is not a client error; the engine answers with a neutral
// default.
func (h *FormHandler) GetPlayerForm(c *gin.Context) {
	var request FormRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithError(err).Warn("Invalid player form request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No player provided"})
		return
	}

	if request.PlayerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No player provided"})
		return
	}

	assessment := h.engine.Assess(request.PlayerName, scoring.MatchContext{
		Venue:                     request.Venue,
		Opposition:                request.Opposition,
		OppositionBowlingStrength: request.OppositionBowlingStrength,
	})

	c.JSON(http.StatusOK, assessment)
}
