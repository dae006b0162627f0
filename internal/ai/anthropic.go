package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
	anthropicModel   = "claude-3-sonnet-20240229"
)

// AnthropicClient handles interaction with the Anthropic Messages API.
type AnthropicClient struct {
	httpClient     *http.Client
	logger         *logrus.Logger
	apiKey         string
	baseURL        string
	model          string
	maxTokens      int
	circuitBreaker *gobreaker.CircuitBreaker
}

// AnthropicMessage represents a message in the conversation
type AnthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnthropicRequest represents the request payload for the Messages API
type AnthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []AnthropicMessage `json:"messages"`
}

// AnthropicResponse represents the response from the Messages API
type AnthropicResponse struct {
	ID         string                  `json:"id"`
	Type       string                  `json:"type"`
	Role       string                  `json:"role"`
	Content    []AnthropicContentBlock `json:"content"`
	Model      string                  `json:"model"`
	StopReason string                  `json:"stop_reason"`
}

// AnthropicContentBlock represents content blocks in the response
type AnthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropicClient creates an Anthropic client, or nil when no API key is
// configured. A nil client simply means this tier is absent from the
// fallback chain.
func NewAnthropicClient(apiKey string, timeout time.Duration, maxTokens int, logger *logrus.Logger) *AnthropicClient {
	if apiKey == "" {
		return nil
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "anthropic-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"circuit":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Info("Anthropic API circuit breaker state changed")
		},
	})

	return &AnthropicClient{
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
		apiKey:         apiKey,
		baseURL:        anthropicBaseURL,
		model:          anthropicModel,
		maxTokens:      maxTokens,
		circuitBreaker: cb,
	}
}

// Name identifies this provider in logs and health reporting.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

// Complete sends the prompt to the Messages API and returns the first text
// block of the response. A single attempt; errors are returned for the
// caller to fall through on.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	request := AnthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []AnthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	response, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.makeRequest(ctx, request)
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API request failed: %w", err)
	}

	anthropicResp := response.(*AnthropicResponse)
	if len(anthropicResp.Content) == 0 {
		return "", fmt.Errorf("anthropic API returned empty content")
	}

	return anthropicResp.Content[0].Text, nil
}

func (c *AnthropicClient) makeRequest(ctx context.Context, request AnthropicRequest) (*AnthropicResponse, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/messages", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var anthropicResp AnthropicResponse
		if err := json.NewDecoder(resp.Body).Decode(&anthropicResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &anthropicResp, nil
	}

	var envelope anthropicErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("invalid API credentials: %s", envelope.Error.Message)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limit exceeded: %s", envelope.Error.Message)
	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request: %s", envelope.Error.Message)
	default:
		return nil, fmt.Errorf("unexpected error (status %d): %s", resp.StatusCode, envelope.Error.Message)
	}
}

// Healthy reports whether the circuit breaker is closed.
func (c *AnthropicClient) Healthy() bool {
	return c.circuitBreaker.State() == gobreaker.StateClosed
}
