package scoring

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pitchside/fantasy-cricket-ai/internal/players"
)

const defaultOppositionStrength = 75

// MatchContext carries the caller-supplied context for a form assessment.
// OppositionBowlingStrength is only consulted when Opposition is set; nil
// means the default strength of 75.
type MatchContext struct {
	Venue                     string
	Opposition                bool
	OppositionBowlingStrength *int
}

// FormAssessment is the result of scoring a player against a match context.
type FormAssessment struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// Engine computes adjusted form scores from the player catalog.
type Engine struct {
	catalog *players.Catalog
	logger  *logrus.Logger
}

// NewEngine creates a form scoring engine backed by the given catalog.
func NewEngine(catalog *players.Catalog, logger *logrus.Logger) *Engine {
	return &Engine{catalog: catalog, logger: logger}
}

// Assess scores a player's expected form for the given match context. An
// unknown player gets a neutral 50 with no adjustments. Adjustments apply
// in a fixed order: venue, opposition strength, recent batting form. The
// final score is clamped to [0, 100].
func (e *Engine) Assess(playerName string, ctx MatchContext) FormAssessment {
	player, ok := e.catalog.Lookup(playerName)
	if !ok {
		e.logger.WithField("player", playerName).Debug("Form assessment for unknown player")
		return FormAssessment{Score: 50, Reasoning: "Player not found in database"}
	}

	score := player.Form
	var reasoning []string

	if ctx.Venue != "" && strings.Contains(strings.ToLower(ctx.Venue), "home") && player.HomeAdvantage > 85 {
		score += 10
		reasoning = append(reasoning, fmt.Sprintf("Strong home advantage at %s", ctx.Venue))
	}

	if ctx.Opposition {
		strength := defaultOppositionStrength
		if ctx.OppositionBowlingStrength != nil {
			strength = *ctx.OppositionBowlingStrength
		}
		if strength < 70 {
			score += 8
			reasoning = append(reasoning, "Weak opposition bowling")
		} else if strength > 85 {
			score -= 5
			reasoning = append(reasoning, "Strong opposition bowling")
		}
	}

	// Recent form is read from batting scores only; pure bowlers carry
	// wickets instead and skip this adjustment.
	if len(player.RecentScores) > 0 {
		sum := 0
		for _, s := range player.RecentScores {
			sum += s
		}
		avg := float64(sum) / float64(len(player.RecentScores))
		if avg > 50 {
			score += 5
			reasoning = append(reasoning, fmt.Sprintf("Excellent recent form (avg: %.1f)", avg))
		} else if avg < 25 {
			score -= 8
			reasoning = append(reasoning, fmt.Sprintf("Poor recent form (avg: %.1f)", avg))
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	text := "Standard form analysis"
	if len(reasoning) > 0 {
		text = strings.Join(reasoning, "; ")
	}

	return FormAssessment{Score: score, Reasoning: text}
}
