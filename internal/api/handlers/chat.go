package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pitchside/fantasy-cricket-ai/internal/advisor"
)

// ChatHandler handles the main advice chat endpoint
type ChatHandler struct {
	advisor *advisor.Advisor
	logger  *logrus.Logger
}

// ChatRequest is the inbound chat payload
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the chat reply with its generation timestamp
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// NewChatHandler creates a new chat handler
func NewChatHandler(advisor *advisor.Advisor, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		advisor: advisor,
		logger:  logger,
	}
}

// Chat answers a free-text fantasy cricket question. Only a missing or
// empty message is a client error; the advisor itself never fails.
func (h *ChatHandler) Chat(c *gin.Context) {
	var request ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithError(err).Warn("Invalid chat request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	if request.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	requestID := uuid.New().String()
	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"length":     len(request.Message),
	}).Info("Processing chat request")

	response := h.advisor.Respond(c.Request.Context(), request.Message)

	c.JSON(http.StatusOK, ChatResponse{
		Response:  response,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
