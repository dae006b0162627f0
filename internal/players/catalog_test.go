package players_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/fantasy-cricket-ai/internal/players"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := players.NewCatalog()

	tests := []struct {
		name       string
		query      string
		wantFound  bool
		wantTeam   string
		wantRole   players.Role
	}{
		{name: "exact match", query: "Virat Kohli", wantFound: true, wantTeam: "RCB", wantRole: players.RoleBatsman},
		{name: "case insensitive", query: "virat kohli", wantFound: true, wantTeam: "RCB", wantRole: players.RoleBatsman},
		{name: "upper case", query: "JASPRIT BUMRAH", wantFound: true, wantTeam: "MI", wantRole: players.RoleBowler},
		{name: "all rounder", query: "Hardik Pandya", wantFound: true, wantTeam: "MI", wantRole: players.RoleAllRounder},
		{name: "wicket keeper", query: "KL Rahul", wantFound: true, wantTeam: "LSG", wantRole: players.RoleWKBatsman},
		{name: "unknown player", query: "MS Dhoni", wantFound: false},
		{name: "partial name misses", query: "Virat", wantFound: false},
		{name: "empty name", query: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, found := catalog.Lookup(tt.query)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantTeam, p.Team)
				assert.Equal(t, tt.wantRole, p.Role)
			}
		})
	}
}

func TestCatalog_LookupDuplicateNameFirstCategoryWins(t *testing.T) {
	catalog := &players.Catalog{
		Batsmen: []players.Player{
			{Name: "Sam Curran", Team: "PBKS", Role: players.RoleBatsman},
		},
		Bowlers: []players.Player{
			{Name: "Sam Curran", Team: "CSK", Role: players.RoleBowler},
		},
	}

	p, found := catalog.Lookup("sam curran")
	require.True(t, found)
	assert.Equal(t, players.RoleBatsman, p.Role)
	assert.Equal(t, "PBKS", p.Team)
}

func TestCatalog_ReferenceDataShape(t *testing.T) {
	catalog := players.NewCatalog()

	assert.Len(t, catalog.Batsmen, 4)
	assert.Len(t, catalog.Bowlers, 3)
	assert.Len(t, catalog.AllRounders, 2)
	assert.Len(t, catalog.All(), 9)

	// Pure bowlers carry wickets, never batting scores
	for _, b := range catalog.Bowlers {
		assert.Empty(t, b.RecentScores, b.Name)
		assert.NotEmpty(t, b.RecentWickets, b.Name)
	}

	// All-rounders carry both
	for _, a := range catalog.AllRounders {
		assert.NotEmpty(t, a.RecentScores, a.Name)
		assert.NotEmpty(t, a.RecentWickets, a.Name)
	}
}

func TestCatalog_MustLookupPanicsOnUnknown(t *testing.T) {
	catalog := players.NewCatalog()

	assert.NotPanics(t, func() { catalog.MustLookup("Rohit Sharma") })
	assert.Panics(t, func() { catalog.MustLookup("Unknown Player") })
}
