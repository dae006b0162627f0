package advisor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pitchside/fantasy-cricket-ai/internal/ai"
	"github.com/pitchside/fantasy-cricket-ai/internal/players"
)

// Advisor resolves a free-text query through a tiered chain: AI providers
// in priority order, then the rule engine. It always produces a response;
// provider failures are logged and absorbed.
type Advisor struct {
	providers []ai.Provider
	rules     *RuleEngine
	catalog   *players.Catalog
	logger    *logrus.Logger
}

// NewAdvisor creates an advisor with the given provider chain. The slice
// holds only providers whose clients were constructed; order sets priority.
func NewAdvisor(providers []ai.Provider, rules *RuleEngine, catalog *players.Catalog, logger *logrus.Logger) *Advisor {
	return &Advisor{
		providers: providers,
		rules:     rules,
		catalog:   catalog,
		logger:    logger,
	}
}

// Respond answers the query. Each provider gets a single attempt; any error
// falls through to the next tier. The rule engine is terminal and cannot
// fail.
func (a *Advisor) Respond(ctx context.Context, query string) string {
	prompt := ai.BuildPrompt(a.catalog, query)

	for _, provider := range a.providers {
		text, err := provider.Complete(ctx, prompt)
		if err != nil {
			a.logger.WithError(err).WithField("provider", provider.Name()).Warn("AI provider failed, falling through")
			continue
		}
		a.logger.WithField("provider", provider.Name()).Debug("AI provider answered query")
		return text
	}

	a.logger.Debug("Answering query with rule-based responder")
	return a.rules.Respond(query)
}
