package players

import "strings"

// Role identifies a player's primary role in the XI.
type Role string

const (
	RoleBatsman    Role = "Batsman"
	RoleWKBatsman  Role = "WK-Batsman"
	RoleBowler     Role = "Bowler"
	RoleAllRounder Role = "All-Rounder"
)

// Player holds the static attributes the advice engine works from.
// Batting-role modifiers (VsPace through HomeAdvantage) are zero for pure
// bowlers; bowling-role modifiers are zero for pure batsmen.
type Player struct {
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Role      Role    `json:"role"`
	Price     float64 `json:"price"`
	Form      int     `json:"form"`
	AvgPoints int     `json:"avg_points"`

	RecentScores  []int `json:"recent_scores,omitempty"`
	RecentWickets []int `json:"recent_wickets,omitempty"`

	VsPace        int `json:"vs_pace,omitempty"`
	VsSpin        int `json:"vs_spin,omitempty"`
	Powerplay     int `json:"powerplay,omitempty"`
	DeathOvers    int `json:"death_overs,omitempty"`
	HomeAdvantage int `json:"home_advantage,omitempty"`

	PowerplayEff int     `json:"powerplay_eff,omitempty"`
	DeathEff     int     `json:"death_eff,omitempty"`
	Economy      float64 `json:"economy,omitempty"`
	VsTopOrder   int     `json:"vs_top_order,omitempty"`
	VsLowerOrder int     `json:"vs_lower_order,omitempty"`

	BattingAvg int `json:"batting_avg,omitempty"`
	BowlingAvg int `json:"bowling_avg,omitempty"`
}

// Catalog is the static player database, grouped by category. It is
// populated once at startup and never mutated.
type Catalog struct {
	Batsmen     []Player
	Bowlers     []Player
	AllRounders []Player
}

// Lookup finds a player by name, case-insensitive exact match. Categories
// are scanned in a fixed order (batsmen, bowlers, all-rounders) and the
// first match wins, so a duplicate name resolves to the earliest category.
func (c *Catalog) Lookup(name string) (Player, bool) {
	for _, group := range [][]Player{c.Batsmen, c.Bowlers, c.AllRounders} {
		for _, p := range group {
			if strings.EqualFold(p.Name, name) {
				return p, true
			}
		}
	}
	return Player{}, false
}

// MustLookup returns the named player or panics. Intended for the canned
// response templates that reference catalog members by name.
func (c *Catalog) MustLookup(name string) Player {
	p, ok := c.Lookup(name)
	if !ok {
		panic("players: unknown player " + name)
	}
	return p
}

// All returns every player across categories in catalog order.
func (c *Catalog) All() []Player {
	out := make([]Player, 0, len(c.Batsmen)+len(c.Bowlers)+len(c.AllRounders))
	out = append(out, c.Batsmen...)
	out = append(out, c.Bowlers...)
	out = append(out, c.AllRounders...)
	return out
}

// NewCatalog builds the reference player database.
func NewCatalog() *Catalog {
	return &Catalog{
		Batsmen: []Player{
			{
				Name: "Virat Kohli", Team: "RCB", Role: RoleBatsman,
				Price: 17.0, Form: 85, AvgPoints: 45,
				RecentScores: []int{67, 45, 23, 89, 34},
				VsPace: 85, VsSpin: 90, Powerplay: 75,
				DeathOvers: 88, HomeAdvantage: 92,
			},
			{
				Name: "Rohit Sharma", Team: "MI", Role: RoleBatsman,
				Price: 16.5, Form: 78, AvgPoints: 42,
				RecentScores: []int{45, 78, 12, 67, 89},
				VsPace: 88, VsSpin: 82, Powerplay: 95,
				DeathOvers: 75, HomeAdvantage: 89,
			},
			{
				Name: "KL Rahul", Team: "LSG", Role: RoleWKBatsman,
				Price: 16.0, Form: 82, AvgPoints: 40,
				RecentScores: []int{56, 34, 78, 23, 45},
				VsPace: 86, VsSpin: 84, Powerplay: 88,
				DeathOvers: 85, HomeAdvantage: 85,
			},
			{
				Name: "Shubman Gill", Team: "GT", Role: RoleBatsman,
				Price: 15.5, Form: 88, AvgPoints: 38,
				RecentScores: []int{67, 89, 45, 12, 78},
				VsPace: 84, VsSpin: 86, Powerplay: 82,
				DeathOvers: 78, HomeAdvantage: 87,
			},
		},
		Bowlers: []Player{
			{
				Name: "Jasprit Bumrah", Team: "MI", Role: RoleBowler,
				Price: 15.0, Form: 92, AvgPoints: 35,
				RecentWickets: []int{3, 1, 2, 4, 2},
				PowerplayEff: 88, DeathEff: 95, Economy: 7.2,
				VsTopOrder: 90, VsLowerOrder: 85,
			},
			{
				Name: "Rashid Khan", Team: "GT", Role: RoleBowler,
				Price: 14.5, Form: 89, AvgPoints: 33,
				RecentWickets: []int{2, 3, 1, 2, 3},
				PowerplayEff: 75, DeathEff: 85, Economy: 6.8,
				VsTopOrder: 88, VsLowerOrder: 92,
			},
			{
				Name: "Yuzvendra Chahal", Team: "RR", Role: RoleBowler,
				Price: 13.5, Form: 85, AvgPoints: 30,
				RecentWickets: []int{2, 1, 3, 2, 1},
				PowerplayEff: 70, DeathEff: 75, Economy: 7.8,
				VsTopOrder: 85, VsLowerOrder: 88,
			},
		},
		AllRounders: []Player{
			{
				Name: "Hardik Pandya", Team: "MI", Role: RoleAllRounder,
				Price: 16.0, Form: 86, AvgPoints: 48,
				RecentScores:  []int{45, 23, 67, 34, 56},
				RecentWickets: []int{1, 2, 0, 1, 2},
				BattingAvg: 82, BowlingAvg: 78,
			},
			{
				Name: "Ravindra Jadeja", Team: "CSK", Role: RoleAllRounder,
				Price: 15.5, Form: 84, AvgPoints: 45,
				RecentScores:  []int{34, 56, 23, 45, 12},
				RecentWickets: []int{2, 1, 1, 3, 1},
				BattingAvg: 78, BowlingAvg: 85,
			},
		},
	}
}
