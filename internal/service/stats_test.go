package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatSeason(t *testing.T) {
	require.Equal(t, "2024-2025", FormatSeason(2024))
	require.Equal(t, "1999-2000", FormatSeason(1999))
}

func TestSeasonForDate(t *testing.T) {
	cases := []struct {
		date   time.Time
		season string
	}{
		{date: time.Date(2024, time.October, 22, 0, 0, 0, 0, time.UTC), season: "2024-2025"},
		{date: time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), season: "2024-2025"},
		{date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), season: "2024-2025"},
		{date: time.Date(2025, time.June, 17, 0, 0, 0, 0, time.UTC), season: "2024-2025"},
		{date: time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC), season: "2025-2026"},
		{date: time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), season: "2025-2026"},
	}

	for _, test := range cases {
		require.Equal(t, test.season, SeasonForDate(test.date), test.date.Format("2006-01-02"))
	}
}

func TestCalculateSeriesStats(t *testing.T) {
	// Home team won game 4 to go up 3-1; the series was 2-1 going in
	stats := CalculateSeriesStats(110, 98, 3, 1, "BOS", "MIA")
	require.Equal(t, 2, stats.PregameHomeWins)
	require.Equal(t, 1, stats.PregameHomeLosses)
	require.Equal(t, "BOS", stats.PregameLeader)
	require.Equal(t, "2-1", stats.PregameRecord)

	// Away team won to even the series at 2-2; home led 2-1 going in
	stats = CalculateSeriesStats(98, 110, 2, 2, "BOS", "MIA")
	require.Equal(t, 2, stats.PregameHomeWins)
	require.Equal(t, 1, stats.PregameHomeLosses)
	require.Equal(t, "BOS", stats.PregameLeader)

	// Series tied going in: no leader
	stats = CalculateSeriesStats(110, 98, 2, 1, "BOS", "MIA")
	require.Equal(t, 1, stats.PregameHomeWins)
	require.Equal(t, 1, stats.PregameHomeLosses)
	require.Empty(t, stats.PregameLeader)
	require.Equal(t, "1-1", stats.PregameRecord)

	// Away leads after winning the opener on the road
	stats = CalculateSeriesStats(98, 110, 0, 1, "BOS", "MIA")
	require.Equal(t, 0, stats.PregameHomeWins)
	require.Equal(t, 0, stats.PregameHomeLosses)
	require.Empty(t, stats.PregameLeader)
}
