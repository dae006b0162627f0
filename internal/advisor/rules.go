package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pitchside/fantasy-cricket-ai/internal/players"
)

// rule pairs a query predicate with a response renderer. Rules are
// evaluated in declaration order and the first match wins, so rules whose
// trigger words overlap must be declared ahead of the broader ones.
type rule struct {
	name   string
	match  func(query string) bool
	render func(original string) string
}

// RuleEngine produces deterministic templated answers from the player
// catalog. It is the terminal tier of the response chain and never fails.
type RuleEngine struct {
	catalog *players.Catalog
	rules   []rule
}

// NewRuleEngine builds the ordered dispatch table.
func NewRuleEngine(catalog *players.Catalog) *RuleEngine {
	re := &RuleEngine{catalog: catalog}
	re.rules = []rule{
		{
			name: "player_comparison",
			match: func(q string) bool {
				return strings.Contains(q, "rohit") && strings.Contains(q, "virat")
			},
			render: func(string) string { return re.renderComparison() },
		},
		{
			name:   "captain_picks",
			match:  func(q string) bool { return strings.Contains(q, "captain") },
			render: func(string) string { return re.renderCaptains() },
		},
		{
			name:   "team_building",
			match:  matchAny("team", "squad", "xi"),
			render: func(string) string { return re.renderTeamStrategy() },
		},
		{
			name:   "differential_picks",
			match:  func(q string) bool { return strings.Contains(q, "differential") },
			render: func(string) string { return re.renderDifferentials() },
		},
		{
			name:   "match_conditions",
			match:  matchAny("weather", "pitch", "conditions"),
			render: func(string) string { return re.renderConditions() },
		},
		{
			name:   "live_matches",
			match:  matchAny("live", "current", "ongoing"),
			render: func(string) string { return re.renderLiveUpdates() },
		},
	}
	return re
}

// Respond answers the query with the first matching rule, or the generic
// acknowledgment when nothing matches.
func (re *RuleEngine) Respond(query string) string {
	lowered := strings.ToLower(query)
	for _, r := range re.rules {
		if r.match(lowered) {
			return r.render(query)
		}
	}
	return re.renderDefault(query)
}

func matchAny(words ...string) func(string) bool {
	return func(q string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
}

func joinScores(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}

func (re *RuleEngine) renderComparison() string {
	rohit := re.catalog.MustLookup("Rohit Sharma")
	virat := re.catalog.MustLookup("Virat Kohli")

	return fmt.Sprintf(`🏏 **Rohit vs Virat Analysis:**

**Rohit Sharma (%s)**:
- Form: %d%% | Price: ₹%.1fCr
- Powerplay specialist with %d%% efficiency
- Recent scores: %s

**Virat Kohli (%s)**:
- Form: %d%% | Price: ₹%.1fCr
- Death overs expert with %d%% efficiency
- Recent scores: %s

**Recommendation**: Pick Rohit for powerplay-heavy strategies, Virat for consistent scoring through innings.`,
		rohit.Team, rohit.Form, rohit.Price, rohit.Powerplay, joinScores(rohit.RecentScores),
		virat.Team, virat.Form, virat.Price, virat.DeathOvers, joinScores(virat.RecentScores))
}

func (re *RuleEngine) renderCaptains() string {
	// Static captaincy ranking, independent of the form scoring engine.
	captains := []struct {
		name   string
		score  int
		reason string
	}{
		{"Virat Kohli", 85, "Consistent performer, good on all pitches"},
		{"Rohit Sharma", 82, "Powerplay specialist, home advantage"},
		{"Hardik Pandya", 88, "All-rounder value, batting + bowling points"},
	}

	var b strings.Builder
	b.WriteString("👑 **Captain Recommendations:**\n\n")
	for i, c := range captains {
		fmt.Fprintf(&b, "%d. **%s** (Score: %d)\n   📝 %s\n\n", i+1, c.name, c.score, c.reason)
	}
	return b.String()
}

func (re *RuleEngine) renderTeamStrategy() string {
	return `🏏 **Best Team Strategy:**

**Batsmen (4)**: Rohit, Virat, KL Rahul, Shubman Gill
**All-Rounders (2)**: Hardik Pandya, Jadeja
**Bowlers (5)**: Bumrah, Rashid, Chahal + 2 budget picks

**Budget**: ₹100Cr | **Captain**: Hardik | **VC**: Virat

**Key Strategy**: Balance between premium picks and budget differentials for maximum points ceiling.`
}

func (re *RuleEngine) renderDifferentials() string {
	return `🎯 **Differential Picks:**

1. **Shubman Gill** (15% owned) - GT's anchor, undervalued
2. **Yuzvendra Chahal** (12% owned) - Spin-friendly conditions
3. **KL Rahul** (18% owned) - Keeping points + batting upside

💡 These picks have low ownership but high scoring potential in current conditions.`
}

func (re *RuleEngine) renderConditions() string {
	return `🌡️ **Match Conditions Analysis:**

**Weather**: 28°C, Clear skies, 15km/h wind
**Pitch**: Batting-friendly surface (78% batting advantage)
**Dew Factor**: Expected in 2nd innings

**Strategy**:
- Pick more batsmen for high-scoring game
- Pace bowlers might struggle with dew
- Prefer teams batting second`
}

func (re *RuleEngine) renderLiveUpdates() string {
	return `📺 **Live IPL Updates:**

🔴 **MI vs CSK** - Live at Wankhede
   MI: 156/4 (18.2) | Target: 189

⏰ **RCB vs KKR** - Starting in 4 hours
   Venue: Chinnaswamy Stadium

✅ **DC vs RR** - Completed
   DC won by 47 runs

💡 Focus your team on the upcoming RCB vs KKR match!`
}

func (re *RuleEngine) renderDefault(query string) string {
	return fmt.Sprintf(`🏏 I understand you're asking about: "%s"

Here's my analysis:
- Current form trends favor aggressive batting lineups
- Spin bowlers are performing well in evening matches
- All-rounders provide the best value for money

Ask me about specific players, match strategies, or captain choices for more detailed insights!`, query)
}
