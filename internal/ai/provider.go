package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/fantasy-cricket-ai/internal/players"
)

// Provider is a completion-generating backend. Implementations make a
// single bounded-time attempt; any failure means the caller moves on to the
// next provider in its chain.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// SystemPrompt frames chat-style providers that accept a separate system
// message.
const SystemPrompt = "You are an expert Fantasy Cricket AI assistant."

// BuildPrompt wraps the user's query in the fantasy-cricket instructional
// context, including the roster the advice should draw from.
func BuildPrompt(catalog *players.Catalog, query string) string {
	names := make([]string, 0, 9)
	for _, p := range catalog.All() {
		names = append(names, p.Name)
	}

	return fmt.Sprintf(`You are an expert Fantasy Cricket AI assistant for IPL. Current context:
- Available players: %s
- User query: %s

Provide specific, actionable advice for Fantasy Cricket. Include:
1. Player recommendations with reasoning
2. Current form analysis
3. Match situation awareness
4. Price vs value considerations

Be conversational but expert. Use cricket terminology appropriately.
Keep response under 300 words.`, strings.Join(names, ", "), query)
}
