package livedata

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// MatchStatus describes where a match is in its lifecycle.
type MatchStatus string

const (
	StatusLive      MatchStatus = "Live"
	StatusUpcoming  MatchStatus = "Upcoming"
	StatusConcluded MatchStatus = "Concluded"
)

// Match is a single match-state record.
type Match struct {
	Name   string      `json:"name"`
	Venue  string      `json:"venue"`
	Status MatchStatus `json:"status"`
	Score  *string     `json:"score"`
	Time   string      `json:"time"`
}

// Snapshot is the full live-data payload. Stats, weather and pitch report
// are placeholders that stay empty until a real feed is integrated.
type Snapshot struct {
	Matches     []Match                `json:"matches"`
	Stats       map[string]interface{} `json:"stats"`
	Weather     map[string]interface{} `json:"weather"`
	PitchReport map[string]interface{} `json:"pitch_report"`
}

// Cache serves match-state snapshots, regenerating them when the stored
// copy is older than the configured TTL. The zero time means the cache has
// never been populated. The clock is injected so the staleness gate can be
// tested deterministically.
type Cache struct {
	mu          sync.Mutex
	ttl         time.Duration
	now         func() time.Time
	logger      *logrus.Logger
	lastUpdated time.Time
	snapshot    Snapshot
}

// NewCache creates a live data cache with the given staleness TTL.
func NewCache(ttl time.Duration, now func() time.Time, logger *logrus.Logger) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:    ttl,
		now:    now,
		logger: logger,
	}
}

// Get returns the cached snapshot, regenerating it first if it is stale or
// has never been populated. Generation failures are logged and produce an
// empty snapshot rather than an error; callers never see a failure.
func (c *Cache) Get() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.lastUpdated.IsZero() && now.Sub(c.lastUpdated) < c.ttl {
		c.logger.Debug("Serving live data from cache")
		return c.snapshot
	}

	snapshot, err := c.generate(now)
	if err != nil {
		c.logger.WithError(err).Error("Failed to generate live data")
		return emptySnapshot()
	}

	c.snapshot = snapshot
	c.lastUpdated = now

	c.logger.WithField("matches", len(snapshot.Matches)).Debug("Regenerated live data")
	return c.snapshot
}

func (c *Cache) generate(now time.Time) (Snapshot, error) {
	liveScore := "MI: 156/4 (18.2) vs CSK: 145/6 (20)"
	finalScore := "DC: 189/6 (20) beat RR: 142/9 (20)"

	return Snapshot{
		Matches: []Match{
			{
				Name:   "Mumbai Indians vs Chennai Super Kings",
				Venue:  "Wankhede Stadium, Mumbai",
				Status: StatusLive,
				Score:  &liveScore,
				Time:   now.Format("15:04"),
			},
			{
				Name:   "Royal Challengers Bangalore vs Kolkata Knight Riders",
				Venue:  "M. Chinnaswamy Stadium, Bangalore",
				Status: StatusUpcoming,
				Score:  nil,
				Time:   now.Add(4 * time.Hour).Format("15:04"),
			},
			{
				Name:   "Delhi Capitals vs Rajasthan Royals",
				Venue:  "Arun Jaitley Stadium, Delhi",
				Status: StatusConcluded,
				Score:  &finalScore,
				Time:   now.Add(-2 * time.Hour).Format("15:04"),
			},
		},
		Stats:       map[string]interface{}{},
		Weather:     map[string]interface{}{},
		PitchReport: map[string]interface{}{},
	}, nil
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Matches:     []Match{},
		Stats:       map[string]interface{}{},
		Weather:     map[string]interface{}{},
		PitchReport: map[string]interface{}{},
	}
}
