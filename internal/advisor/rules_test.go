package advisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/fantasy-cricket-ai/internal/advisor"
	"github.com/pitchside/fantasy-cricket-ai/internal/players"
)

func newRuleEngine() *advisor.RuleEngine {
	return advisor.NewRuleEngine(players.NewCatalog())
}

func TestRules_ComparisonInterpolatesCatalogValues(t *testing.T) {
	response := newRuleEngine().Respond("Should I pick Rohit or Virat today?")

	assert.Contains(t, response, "Rohit vs Virat Analysis")
	assert.Contains(t, response, "Form: 78% | Price: ₹16.5Cr")
	assert.Contains(t, response, "Form: 85% | Price: ₹17.0Cr")
	assert.Contains(t, response, "Powerplay specialist with 95% efficiency")
	assert.Contains(t, response, "Death overs expert with 88% efficiency")
	assert.Contains(t, response, "45, 78, 12, 67, 89")
	assert.Contains(t, response, "67, 45, 23, 89, 34")
}

func TestRules_ComparisonOutranksOtherKeywords(t *testing.T) {
	// "captain" and "team" are also present; the comparison rule is
	// checked first and must win.
	response := newRuleEngine().Respond("Rohit or Virat as captain of my team?")

	assert.Contains(t, response, "Rohit vs Virat Analysis")
	assert.NotContains(t, response, "Captain Recommendations")
}

func TestRules_ComparisonIsCaseInsensitive(t *testing.T) {
	response := newRuleEngine().Respond("ROHIT vs VIRAT?")

	assert.Contains(t, response, "Rohit vs Virat Analysis")
}

func TestRules_CaptainList(t *testing.T) {
	response := newRuleEngine().Respond("who is the best captain pick?")

	assert.Contains(t, response, "Captain Recommendations")
	assert.Contains(t, response, "1. **Virat Kohli** (Score: 85)")
	assert.Contains(t, response, "2. **Rohit Sharma** (Score: 82)")
	assert.Contains(t, response, "3. **Hardik Pandya** (Score: 88)")
}

func TestRules_TeamKeywords(t *testing.T) {
	for _, query := range []string{
		"build me a team",
		"suggest a squad",
		"what is the best XI?",
	} {
		response := newRuleEngine().Respond(query)
		assert.Contains(t, response, "Best Team Strategy", query)
		assert.Contains(t, response, "**Budget**: ₹100Cr", query)
	}
}

func TestRules_DifferentialPicks(t *testing.T) {
	response := newRuleEngine().Respond("give me differential options")

	assert.Contains(t, response, "Differential Picks")
	assert.Contains(t, response, "Shubman Gill** (15% owned)")
}

func TestRules_ConditionsKeywords(t *testing.T) {
	for _, query := range []string{
		"how is the weather?",
		"pitch report please",
		"what are the conditions like?",
	} {
		response := newRuleEngine().Respond(query)
		assert.Contains(t, response, "Match Conditions Analysis", query)
	}
}

func TestRules_LiveKeywords(t *testing.T) {
	for _, query := range []string{
		"any live games?",
		"current score?",
		"ongoing matches",
	} {
		response := newRuleEngine().Respond(query)
		assert.Contains(t, response, "Live IPL Updates", query)
	}
}

func TestRules_DefaultEchoesQuery(t *testing.T) {
	query := "tell me about bowling strategies"
	response := newRuleEngine().Respond(query)

	assert.Contains(t, response, `"tell me about bowling strategies"`)
	assert.Contains(t, response, "All-rounders provide the best value for money")
}

func TestRules_DispatchOrder(t *testing.T) {
	// "live" appears in rule 6 but "captain" in rule 2; the earlier rule
	// must win.
	response := newRuleEngine().Respond("live captain advice")

	assert.Contains(t, response, "Captain Recommendations")
	assert.NotContains(t, response, "Live IPL Updates")
}
