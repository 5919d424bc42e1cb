package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	BaseURL  = "https://stats.nba.com/stats"
	LeagueID = "00"

	// UserAgent for requests; the stats endpoint rejects default Go clients
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client wraps the NBA stats API. The team directory is built once by the
// caller and passed in rather than kept as package-wide state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	teams      TeamDirectory
}

// New creates a stats API client with a custom base URL
func New(baseURL string, teams TeamDirectory) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if teams == nil {
		teams = DefaultTeamDirectory()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		teams:      teams,
	}
}

// NewClient creates a stats API client with default settings
func NewClient() *Client {
	return New(BaseURL, DefaultTeamDirectory())
}

// ScoreboardGame is one game from the scoreboard for a date.
type ScoreboardGame struct {
	GameID   string `json:"game_id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Arena    string `json:"arena"`
	Date     string `json:"date"`
}

// scoreboardResponse mirrors the resultSets/rowSet payload shape.
type scoreboardResponse struct {
	ResultSets []struct {
		Name    string          `json:"name"`
		Headers []string        `json:"headers"`
		RowSet  [][]interface{} `json:"rowSet"`
	} `json:"resultSets"`
}

// Fixed column positions in the GameHeader result set.
const (
	colGameID     = 2
	colHomeTeamID = 6
	colAwayTeamID = 7
	colArena      = 15
)

// Scoreboard fetches all games for a date from the stats API.
func (c *Client) Scoreboard(ctx context.Context, date time.Time) ([]ScoreboardGame, error) {
	dateStr := date.Format("2006-01-02")
	url := fmt.Sprintf("%s/scoreboardv2?GameDate=%s&LeagueID=%s&DayOffset=0", c.baseURL, dateStr, LeagueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building scoreboard request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoreboard request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading scoreboard response: %w", err)
	}

	var payload scoreboardResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding scoreboard response: %w", err)
	}
	if len(payload.ResultSets) == 0 {
		return nil, fmt.Errorf("scoreboard response has no result sets")
	}

	var games []ScoreboardGame
	for _, row := range payload.ResultSets[0].RowSet {
		if len(row) <= colArena {
			continue
		}

		homeTeamID := asInt(row[colHomeTeamID])
		awayTeamID := asInt(row[colAwayTeamID])

		games = append(games, ScoreboardGame{
			GameID:   asString(row[colGameID]),
			HomeTeam: c.teams.Name(homeTeamID),
			AwayTeam: c.teams.Name(awayTeamID),
			Arena:    asString(row[colArena]),
			Date:     dateStr,
		})
	}

	return games, nil
}

// asInt converts a rowSet cell to int; JSON numbers decode as float64.
func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
