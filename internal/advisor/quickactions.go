package advisor

import "errors"

// ErrUnknownAction is returned for a quick action outside the supported
// set; the HTTP layer maps it to a client error.
var ErrUnknownAction = errors.New("unknown action")

// TeamPick is a suggested player in the best-team payload.
type TeamPick struct {
	Name   string `json:"name"`
	Team   string `json:"team"`
	Role   string `json:"role"`
	Price  string `json:"price"`
	Form   string `json:"form"`
	Reason string `json:"reason"`
}

// DifferentialPick is a low-ownership contrarian suggestion.
type DifferentialPick struct {
	Name      string `json:"name"`
	Team      string `json:"team"`
	Ownership string `json:"ownership"`
	Price     string `json:"price"`
	Potential string `json:"potential"`
	Reason    string `json:"reason"`
}

// CaptainOption is a captaincy candidate with its static ranking.
type CaptainOption struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	Captaincy   string `json:"captaincy"`
	Consistency string `json:"consistency"`
	Reason      string `json:"reason"`
}

// BudgetPick is a value-for-money suggestion.
type BudgetPick struct {
	Name       string `json:"name"`
	Team       string `json:"team"`
	Role       string `json:"role"`
	Price      string `json:"price"`
	ValueScore string `json:"value_score"`
}

// TipsPayload wraps the general fantasy tips list.
type TipsPayload struct {
	Tips []string `json:"tips"`
}

// QuickAction returns the static payload for a quick-action button. These
// are curated data lookups, not recomputed from the scoring engine.
func QuickAction(action string) (interface{}, error) {
	switch action {
	case "best-team":
		return []TeamPick{
			{Name: "Virat Kohli", Team: "RCB", Role: "Batsman",
				Price: "₹17.0Cr", Form: "85%",
				Reason: "Consistent performer with excellent recent form"},
			{Name: "Rohit Sharma", Team: "MI", Role: "Batsman",
				Price: "₹16.5Cr", Form: "78%",
				Reason: "Powerplay specialist with home advantage"},
			{Name: "Hardik Pandya", Team: "MI", Role: "All-Rounder",
				Price: "₹16.0Cr", Form: "86%",
				Reason: "Double value with batting and bowling points"},
			{Name: "Jasprit Bumrah", Team: "MI", Role: "Bowler",
				Price: "₹15.0Cr", Form: "92%",
				Reason: "Death overs specialist with consistent wickets"},
			{Name: "Rashid Khan", Team: "GT", Role: "Bowler",
				Price: "₹14.5Cr", Form: "89%",
				Reason: "Spin conditions favor his bowling style"},
			{Name: "KL Rahul", Team: "LSG", Role: "WK-Batsman",
				Price: "₹16.0Cr", Form: "82%",
				Reason: "Keeping bonus plus reliable batting"},
		}, nil

	case "differential-picks":
		return []DifferentialPick{
			{Name: "Shubman Gill", Team: "GT", Ownership: "15%",
				Price: "₹15.5Cr", Potential: "High",
				Reason: "Undervalued opener with explosive potential"},
			{Name: "Yuzvendra Chahal", Team: "RR", Ownership: "12%",
				Price: "₹13.5Cr", Potential: "High",
				Reason: "Spin-friendly pitch conditions expected"},
			{Name: "Ishan Kishan", Team: "MI", Ownership: "18%",
				Price: "₹14.0Cr", Potential: "Medium",
				Reason: "Aggressive batting style suits current format"},
		}, nil

	case "captain-options":
		return []CaptainOption{
			{Name: "Virat Kohli", Team: "RCB",
				Captaincy: "88", Consistency: "92%",
				Reason: "Most reliable captain pick with proven track record"},
			{Name: "Hardik Pandya", Team: "MI",
				Captaincy: "85", Consistency: "78%",
				Reason: "All-rounder advantage with batting + bowling points"},
			{Name: "Rohit Sharma", Team: "MI",
				Captaincy: "82", Consistency: "85%",
				Reason: "Strong home record and powerplay dominance"},
		}, nil

	case "budget-picks":
		return []BudgetPick{
			{Name: "Ishan Kishan", Team: "MI", Role: "WK-Batsman",
				Price: "₹14.0Cr", ValueScore: "78"},
			{Name: "Washington Sundar", Team: "SRH", Role: "All-Rounder",
				Price: "₹8.5Cr", ValueScore: "85"},
			{Name: "Mohit Sharma", Team: "GT", Role: "Bowler",
				Price: "₹7.0Cr", ValueScore: "82"},
		}, nil

	case "fantasy-tips":
		return TipsPayload{
			Tips: []string{
				"🎯 Pick 6-7 batsmen for high-scoring matches",
				"👑 Choose captains from top-order batsmen or all-rounders",
				"💰 Balance premium picks with budget differentials",
				"🏟️ Consider venue-specific player performance",
				"📊 Monitor team news 30 mins before deadline",
				"⚡ All-rounders provide the best value in T20 format",
			},
		}, nil

	default:
		return nil, ErrUnknownAction
	}
}
