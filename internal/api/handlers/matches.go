package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pitchside/fantasy-cricket-ai/internal/livedata"
)

// MatchHandler serves match-state data from the live data cache
type MatchHandler struct {
	cache  *livedata.Cache
	logger *logrus.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(cache *livedata.Cache, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{
		cache:  cache,
		logger: logger,
	}
}

// GetMatches returns the current match list.
func (h *MatchHandler) GetMatches(c *gin.Context) {
	snapshot := h.cache.Get()
	c.JSON(http.StatusOK, gin.H{"matches": snapshot.Matches})
}
