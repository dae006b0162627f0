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
	openAIBaseURL = "https://api.openai.com/v1"
	openAIModel   = "gpt-3.5-turbo"
)

// OpenAIClient handles interaction with the OpenAI Chat Completions API.
type OpenAIClient struct {
	httpClient     *http.Client
	logger         *logrus.Logger
	apiKey         string
	baseURL        string
	model          string
	maxTokens      int
	circuitBreaker *gobreaker.CircuitBreaker
}

// OpenAIMessage represents a chat message
type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIRequest represents the request payload for chat completions
type OpenAIRequest struct {
	Model     string          `json:"model"`
	Messages  []OpenAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

// OpenAIResponse represents the chat completions response
type OpenAIResponse struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Model   string         `json:"model"`
	Choices []OpenAIChoice `json:"choices"`
}

// OpenAIChoice represents a completion choice
type OpenAIChoice struct {
	Index        int           `json:"index"`
	Message      OpenAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openAIErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenAIClient creates an OpenAI client, or nil when no API key is
// configured.
func NewOpenAIClient(apiKey string, timeout time.Duration, maxTokens int, logger *logrus.Logger) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai-api",
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
			}).Info("OpenAI API circuit breaker state changed")
		},
	})

	return &OpenAIClient{
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
		apiKey:         apiKey,
		baseURL:        openAIBaseURL,
		model:          openAIModel,
		maxTokens:      maxTokens,
		circuitBreaker: cb,
	}
}

// Name identifies this provider in logs and health reporting.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Complete sends the prompt with a system-role framing message and returns
// the first choice's content. A single attempt, no retries.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	request := OpenAIRequest{
		Model: c.model,
		Messages: []OpenAIMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	}

	response, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.makeRequest(ctx, request)
	})
	if err != nil {
		return "", fmt.Errorf("openai API request failed: %w", err)
	}

	openAIResp := response.(*OpenAIResponse)
	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("openai API returned no choices")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) makeRequest(ctx context.Context, request OpenAIRequest) (*OpenAIResponse, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var openAIResp OpenAIResponse
		if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &openAIResp, nil
	}

	var envelope openAIErrorEnvelope
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
func (c *OpenAIClient) Healthy() bool {
	return c.circuitBreaker.State() == gobreaker.StateClosed
}
