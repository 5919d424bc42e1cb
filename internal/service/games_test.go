package service

import (
	"testing"

	"github.com/ewint814/nba-game-tracker/internal/scrape/bref"
	"github.com/stretchr/testify/require"
)

func TestToNullInt32(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
		value int32
	}{
		{raw: "118", valid: true, value: 118},
		{raw: "19,156", valid: true, value: 19156},
		{raw: " 42 ", valid: true, value: 42},
		{raw: "", valid: false},
		{raw: "n/a", valid: false},
		{raw: "2:14", valid: false},
	}

	for _, test := range cases {
		got := toNullInt32(test.raw)
		require.Equal(t, test.valid, got.Valid, "raw %q", test.raw)
		if test.valid {
			require.Equal(t, test.value, got.Int32, "raw %q", test.raw)
		}
	}
}

func TestToNullString(t *testing.T) {
	require.False(t, toNullString("").Valid)
	require.False(t, toNullString("   ").Valid)

	got := toNullString(" TD Garden ")
	require.True(t, got.Valid)
	require.Equal(t, "TD Garden", got.String)
}

func TestBuildQuarterScores(t *testing.T) {
	lineScore := []bref.LineScoreRow{
		{Team: "mia", Periods: map[string]string{"1": "25", "t": "102"}},
		{Team: "BOS", Periods: map[string]string{"1": "30", "t": "x"}},
	}

	scores := buildQuarterScores(7, lineScore)
	require.Len(t, scores, 4)

	byKey := make(map[string]int32)
	var invalid []string
	for _, qs := range scores {
		require.Equal(t, 7, qs.GameID)
		if qs.Points.Valid {
			byKey[qs.Team+"/"+qs.Period] = qs.Points.Int32
		} else {
			invalid = append(invalid, qs.Team+"/"+qs.Period)
		}
	}

	require.Equal(t, int32(25), byKey["MIA/1"])
	require.Equal(t, int32(102), byKey["MIA/t"])
	require.Equal(t, int32(30), byKey["BOS/1"])
	// Malformed scores null the column instead of failing the save
	require.Equal(t, []string{"BOS/t"}, invalid)
}

func TestBuildTeamLines(t *testing.T) {
	totals := []bref.TeamTotalsRow{
		{Team: "BOS", Stats: map[string]string{"team_total_pts": "118"}},
		{Team: "BOS", Stats: map[string]string{"team_total_pts": "999"}},
	}
	fourFactors := []bref.FourFactorsRow{
		{Team: "bos", EFGPct: ".573", TOVPct: "9.4", ORBPct: "28.1", FTRate: ".205"},
	}

	lines := buildTeamLines(7, totals, fourFactors)
	require.Len(t, lines, 1)

	line := lines[0]
	require.Equal(t, "BOS", line.Team)
	require.Equal(t, ".573", line.EFGPct.String)
	require.True(t, line.Totals.Valid)
	// First totals row per team wins
	require.Contains(t, line.Totals.String, "118")
	require.NotContains(t, line.Totals.String, "999")
}

func TestBuildPlayerLines(t *testing.T) {
	players := []bref.PlayerBoxRow{
		{Player: "Jayson Tatum", Team: "bos", Role: bref.RoleStarter, Stats: map[string]string{"pts_basic": "30"}},
	}

	lines := buildPlayerLines(7, players)
	require.Len(t, lines, 1)
	require.Equal(t, "BOS", lines[0].Team)
	require.Equal(t, "Starter", lines[0].Role.String)
	require.Contains(t, lines[0].Stats.String, "pts_basic")
}
