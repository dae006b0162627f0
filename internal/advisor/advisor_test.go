package advisor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/pitchside/fantasy-cricket-ai/internal/advisor"
	"github.com/pitchside/fantasy-cricket-ai/internal/ai"
	"github.com/pitchside/fantasy-cricket-ai/internal/players"
)

type stubProvider struct {
	name       string
	text       string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func newAdvisor(providers ...ai.Provider) *advisor.Advisor {
	catalog := players.NewCatalog()
	return advisor.NewAdvisor(providers, advisor.NewRuleEngine(catalog), catalog, testLogger())
}

func TestAdvisor_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "anthropic", text: "claude says pick Bumrah"}
	second := &stubProvider{name: "openai", text: "gpt says pick Rashid"}

	response := newAdvisor(first, second).Respond(context.Background(), "who should I pick?")

	assert.Equal(t, "claude says pick Bumrah", response)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestAdvisor_FallsThroughOnError(t *testing.T) {
	first := &stubProvider{name: "anthropic", err: errors.New("quota exceeded")}
	second := &stubProvider{name: "openai", text: "gpt says pick Rashid"}

	response := newAdvisor(first, second).Respond(context.Background(), "who should I pick?")

	assert.Equal(t, "gpt says pick Rashid", response)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestAdvisor_RuleBasedWhenAllProvidersFail(t *testing.T) {
	first := &stubProvider{name: "anthropic", err: errors.New("network down")}
	second := &stubProvider{name: "openai", err: errors.New("auth failed")}

	response := newAdvisor(first, second).Respond(context.Background(), "best captain today?")

	assert.Contains(t, response, "Captain Recommendations")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestAdvisor_RuleBasedWhenNoProvidersConfigured(t *testing.T) {
	response := newAdvisor().Respond(context.Background(), "suggest a differential")

	assert.Contains(t, response, "Differential Picks")
}

func TestAdvisor_SingleAttemptPerProvider(t *testing.T) {
	failing := &stubProvider{name: "anthropic", err: errors.New("timeout")}

	newAdvisor(failing).Respond(context.Background(), "anything")

	assert.Equal(t, 1, failing.calls)
}

func TestAdvisor_PromptEmbedsQueryAndRoster(t *testing.T) {
	provider := &stubProvider{name: "anthropic", text: "ok"}

	newAdvisor(provider).Respond(context.Background(), "is Gill worth 15.5 credits?")

	assert.Contains(t, provider.lastPrompt, "is Gill worth 15.5 credits?")
	assert.Contains(t, provider.lastPrompt, "Virat Kohli")
	assert.Contains(t, provider.lastPrompt, "Ravindra Jadeja")
	assert.Contains(t, provider.lastPrompt, "Fantasy Cricket")
}
