package advisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/fantasy-cricket-ai/internal/advisor"
)

func TestQuickAction_BestTeam(t *testing.T) {
	data, err := advisor.QuickAction("best-team")
	require.NoError(t, err)

	picks, ok := data.([]advisor.TeamPick)
	require.True(t, ok)
	require.Len(t, picks, 6)
	assert.Equal(t, "Virat Kohli", picks[0].Name)
	assert.Equal(t, "₹17.0Cr", picks[0].Price)
}

func TestQuickAction_DifferentialPicks(t *testing.T) {
	data, err := advisor.QuickAction("differential-picks")
	require.NoError(t, err)

	picks, ok := data.([]advisor.DifferentialPick)
	require.True(t, ok)
	require.Len(t, picks, 3)
	assert.Equal(t, "15%", picks[0].Ownership)
}

func TestQuickAction_CaptainOptions(t *testing.T) {
	data, err := advisor.QuickAction("captain-options")
	require.NoError(t, err)

	options, ok := data.([]advisor.CaptainOption)
	require.True(t, ok)
	require.Len(t, options, 3)
	assert.Equal(t, "88", options[0].Captaincy)
}

func TestQuickAction_BudgetPicks(t *testing.T) {
	data, err := advisor.QuickAction("budget-picks")
	require.NoError(t, err)

	picks, ok := data.([]advisor.BudgetPick)
	require.True(t, ok)
	require.Len(t, picks, 3)
}

func TestQuickAction_FantasyTips(t *testing.T) {
	data, err := advisor.QuickAction("fantasy-tips")
	require.NoError(t, err)

	payload, ok := data.(advisor.TipsPayload)
	require.True(t, ok)
	assert.Len(t, payload.Tips, 6)
}

func TestQuickAction_Unknown(t *testing.T) {
	for _, action := range []string{"not-real", "", "best_team", "BEST-TEAM"} {
		data, err := advisor.QuickAction(action)
		assert.ErrorIs(t, err, advisor.ErrUnknownAction, action)
		assert.Nil(t, data, action)
	}
}
