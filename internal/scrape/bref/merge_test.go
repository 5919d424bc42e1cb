package bref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTeamKey(t *testing.T) {
	require.Equal(t, "BOS", NormalizeTeamKey(" bos "))
	require.Equal(t, "BOS", NormalizeTeamKey("BOS"))
	// Idempotent
	require.Equal(t, NormalizeTeamKey("Mia"), NormalizeTeamKey(NormalizeTeamKey("Mia")))
}

func TestInactiveBoxRow(t *testing.T) {
	row := InactiveBoxRow(InactivePlayerRecord{Player: "Tyler Herro", Team: "MIA", Reason: InactiveReason})
	require.Equal(t, "Tyler Herro", row.Player)
	require.Equal(t, RoleInactive, row.Role)
	require.Equal(t, InactiveReason, row.Stats["reason_basic"])
}

func mergeInputs() ([]PlayerBoxRow, []TeamTotalsRow, []LineScoreRow, []FourFactorsRow) {
	players := []PlayerBoxRow{
		{Player: "Jayson Tatum", Team: "BOS", Role: RoleStarter, Stats: map[string]string{"pts_basic": "30"}},
		{Player: "Sam Hauser", Team: "bos ", Role: RoleReserve, Stats: map[string]string{"pts_basic": "9"}},
		{Player: "Luke Kornet", Team: "BOS", Role: RoleInactive, Stats: map[string]string{"reason_basic": "Did Not Dress"}},
	}
	totals := []TeamTotalsRow{
		{Team: "BOS", PlayoffInfo: "Regular Season", Stats: map[string]string{"team_total_pts": "118"}},
		{Team: "BOS", PlayoffInfo: "Regular Season", Stats: map[string]string{"team_total_pts": "999"}},
	}
	lineScore := []LineScoreRow{
		{Team: "BOS", Periods: map[string]string{"1": "30", "t": "118"}, OvertimeInfo: "No OT"},
	}
	fourFactors := []FourFactorsRow{
		{Team: "BOS", EFGPct: ".573", TOVPct: "9.4", ORBPct: "28.1", FTRate: ".205"},
	}
	return players, totals, lineScore, fourFactors
}

func TestMergeActivePlayersShareAggregates(t *testing.T) {
	merged := Merge(mergeInputs())
	require.Len(t, merged, 3)

	tatum, hauser := merged[0], merged[1]
	require.Equal(t, "BOS", tatum.Team)
	require.Equal(t, "BOS", hauser.Team)

	// Every active player on a team carries an identical aggregate copy
	require.Equal(t, tatum.Aggregates, hauser.Aggregates)
	require.Equal(t, "118", tatum.Aggregates["team_total_pts"])
	require.Equal(t, "30", tatum.Aggregates["line_score_1"])
	require.Equal(t, "No OT", tatum.Aggregates["line_score_overtime_info"])
	require.Equal(t, ".573", tatum.Aggregates["four_factors_efg_pct"])
	require.Equal(t, "Regular Season", tatum.PlayoffInfo)

	// Own stats survive untouched
	require.Equal(t, "30", tatum.Stats["pts_basic"])
}

func TestMergeDuplicateTotalsKeepFirst(t *testing.T) {
	merged := Merge(mergeInputs())
	require.Equal(t, "118", merged[0].Aggregates["team_total_pts"])
}

func TestMergeInactiveGetNoAggregates(t *testing.T) {
	merged := Merge(mergeInputs())

	kornet := merged[2]
	require.Equal(t, RoleInactive, kornet.Role)
	require.Nil(t, kornet.Aggregates)
	require.Empty(t, kornet.PlayoffInfo)
	require.Equal(t, "Did Not Dress", kornet.Stats["reason_basic"])
}

func TestMergeUnmatchedTeamKept(t *testing.T) {
	players := []PlayerBoxRow{
		{Player: "Mystery Man", Team: "XYZ", Role: RoleStarter, Stats: map[string]string{"pts_basic": "5"}},
	}
	_, totals, lineScore, fourFactors := mergeInputs()

	merged := Merge(players, totals, lineScore, fourFactors)
	require.Len(t, merged, 1)
	require.Equal(t, "XYZ", merged[0].Team)
	require.Nil(t, merged[0].Aggregates)
}

func TestMergeEmptyInputs(t *testing.T) {
	merged := Merge(nil, nil, nil, nil)
	require.Empty(t, merged)
}
