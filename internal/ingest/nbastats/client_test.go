package nbastats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const scoreboardFixture = `{
	"resultSets": [
		{
			"name": "GameHeader",
			"headers": ["GAME_DATE_EST", "GAME_SEQUENCE", "GAME_ID", "GAME_STATUS_ID", "GAME_STATUS_TEXT", "GAMECODE", "HOME_TEAM_ID", "VISITOR_TEAM_ID", "SEASON", "LIVE_PERIOD", "LIVE_PC_TIME", "NATL_TV_BROADCASTER_ABBREVIATION", "HOME_TV_BROADCASTER_ABBREVIATION", "AWAY_TV_BROADCASTER_ABBREVIATION", "LIVE_PERIOD_TIME_BCAST", "ARENA_NAME"],
			"rowSet": [
				["2024-03-05T00:00:00", 1, "0022300861", 3, "Final", "20240305/MIABOS", 1610612738, 1610612748, "2023", 4, "", "TNT", "", "", "Q4 - TNT", "TD Garden"],
				["2024-03-05T00:00:00", 2, "0022300862", 3, "Final", "20240305/PHODEN", 1610612743, 1610612756, "2023", 4, "", "", "ALT", "AZFamily", "Q4", "Ball Arena"]
			]
		}
	]
}`

func TestScoreboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/scoreboardv2", r.URL.Path)
		require.Equal(t, "2024-03-05", r.URL.Query().Get("GameDate"))
		require.Equal(t, LeagueID, r.URL.Query().Get("LeagueID"))
		require.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scoreboardFixture))
	}))
	defer server.Close()

	client := New(server.URL, DefaultTeamDirectory())
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	games, err := client.Scoreboard(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, games, 2)

	require.Equal(t, "0022300861", games[0].GameID)
	require.Equal(t, "Boston Celtics", games[0].HomeTeam)
	require.Equal(t, "Miami Heat", games[0].AwayTeam)
	require.Equal(t, "TD Garden", games[0].Arena)
	require.Equal(t, "2024-03-05", games[0].Date)

	require.Equal(t, "Denver Nuggets", games[1].HomeTeam)
	require.Equal(t, "Phoenix Suns", games[1].AwayTeam)
}

func TestScoreboardBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := New(server.URL, DefaultTeamDirectory())
	_, err := client.Scoreboard(context.Background(), time.Now())
	require.Error(t, err)
}

func TestScoreboardShortRowsSkipped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets":[{"name":"GameHeader","headers":[],"rowSet":[["2024-03-05",1,"001"]]}]}`))
	}))
	defer server.Close()

	client := New(server.URL, DefaultTeamDirectory())
	games, err := client.Scoreboard(context.Background(), time.Now())
	require.NoError(t, err)
	require.Empty(t, games)
}

func TestTeamDirectoryName(t *testing.T) {
	teams := DefaultTeamDirectory()
	require.Equal(t, "Boston Celtics", teams.Name(1610612738))
	require.Equal(t, "Unknown Team (42)", teams.Name(42))
}
