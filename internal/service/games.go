package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ewint814/nba-game-tracker/internal/cache"
	"github.com/ewint814/nba-game-tracker/internal/scrape/bref"
	"github.com/ewint814/nba-game-tracker/internal/store"
	"github.com/ewint814/nba-game-tracker/internal/store/repository"
)

// GameService handles finding games and logging attended ones
type GameService struct {
	fetcher  bref.Fetcher
	client   *bref.Client
	cache    *cache.RedisCache
	gameRepo *repository.GameRepository
}

// NewGameService creates a new game service. The cache may be nil, in which
// case every lookup fetches from the source site.
func NewGameService(db *store.Database, fetcher bref.Fetcher, client *bref.Client, pageCache *cache.RedisCache) *GameService {
	return &GameService{
		fetcher:  fetcher,
		client:   client,
		cache:    pageCache,
		gameRepo: repository.NewGameRepository(db),
	}
}

// FindGamesByDate scrapes the schedule page for a date, optionally filtered
// to games involving a team ("Boston" matches "Boston Celtics").
func (s *GameService) FindGamesByDate(ctx context.Context, date time.Time, teamFilter string) ([]bref.ScheduleEntry, error) {
	html, err := s.fetchPage(ctx, s.client.ScheduleURL(date))
	if err != nil {
		return nil, err
	}

	return bref.ParseSchedule(html, teamFilter)
}

// ScrapedBoxScore is the full extraction result for one box-score page.
type ScrapedBoxScore struct {
	Players     []bref.PlayerBoxRow         `json:"players"`
	TeamTotals  []bref.TeamTotalsRow        `json:"team_totals"`
	LineScore   []bref.LineScoreRow         `json:"line_score"`
	FourFactors []bref.FourFactorsRow       `json:"four_factors"`
	Inactive    []bref.InactivePlayerRecord `json:"inactive"`
	Metadata    bref.GameMetadata           `json:"metadata"`
	Playoff     bref.PlayoffInfo            `json:"playoff"`
	Merged      []bref.MergedRow            `json:"merged"`
}

// FetchBoxScore runs the extraction pipeline against one box-score page.
func (s *GameService) FetchBoxScore(ctx context.Context, url string) (*ScrapedBoxScore, error) {
	html, err := s.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	players, totals, err := bref.ExtractBoxScore(html)
	if err != nil {
		return nil, fmt.Errorf("extracting box score: %w", err)
	}

	lineScore, fourFactors, err := bref.ExtractLineScoreFourFactors(html)
	if err != nil {
		return nil, fmt.Errorf("extracting line score: %w", err)
	}

	inactive, err := bref.ExtractInactivePlayers(html)
	if err != nil {
		return nil, fmt.Errorf("extracting inactive players: %w", err)
	}

	allRows := make([]bref.PlayerBoxRow, 0, len(players)+len(inactive))
	allRows = append(allRows, players...)
	for _, rec := range inactive {
		allRows = append(allRows, bref.InactiveBoxRow(rec))
	}

	return &ScrapedBoxScore{
		Players:     players,
		TeamTotals:  totals,
		LineScore:   lineScore,
		FourFactors: fourFactors,
		Inactive:    inactive,
		Metadata:    bref.ExtractMetadata(html),
		Playoff:     bref.GameContext(html),
		Merged:      bref.Merge(allRows, totals, lineScore, fourFactors),
	}, nil
}

// SaveGameRequest carries everything needed to log an attended game.
// HomeTeam/AwayTeam/Arena typically come from the stats API lookup; when
// the team names are empty they fall back to line-score abbreviations
// (away team listed first on the source page).
type SaveGameRequest struct {
	Date        time.Time `json:"date"`
	BoxScoreURL string    `json:"box_score_url"`
	HomeTeam    string    `json:"home_team,omitempty"`
	AwayTeam    string    `json:"away_team,omitempty"`
	Arena       string    `json:"arena,omitempty"`
	ExternalID  string    `json:"external_id,omitempty"`

	SeatSection  string `json:"seat_section,omitempty"`
	SeatRow      string `json:"seat_row,omitempty"`
	SeatNumber   string `json:"seat_number,omitempty"`
	AttendedWith string `json:"attended_with,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// SaveAttendedGame scrapes the game's box score and persists the game with
// the personal attendance details in one pass.
func (s *GameService) SaveAttendedGame(ctx context.Context, req SaveGameRequest) (*store.Game, error) {
	if req.BoxScoreURL == "" {
		return nil, fmt.Errorf("box score URL is required")
	}

	scraped, err := s.FetchBoxScore(ctx, req.BoxScoreURL)
	if err != nil {
		return nil, err
	}
	if len(scraped.LineScore) == 0 {
		return nil, fmt.Errorf("no teams found on box score page %s", req.BoxScoreURL)
	}

	game := s.buildGame(req, scraped)
	if err := s.gameRepo.Upsert(ctx, game); err != nil {
		return nil, err
	}

	quarterScores := buildQuarterScores(game.GameID, scraped.LineScore)
	teamLines := buildTeamLines(game.GameID, scraped.TeamTotals, scraped.FourFactors)
	playerLines := buildPlayerLines(game.GameID, scraped.Players)
	inactive := buildInactivePlayers(game.GameID, scraped.Inactive)

	if err := s.gameRepo.SaveBoxScore(ctx, game.GameID, quarterScores, teamLines, playerLines, inactive); err != nil {
		return nil, err
	}

	log.Printf("Saved game %d: %s @ %s (%s)", game.GameID, game.AwayTeam, game.HomeTeam, game.GameDate.Format("2006-01-02"))

	return game, nil
}

// GetGame returns one attended game
func (s *GameService) GetGame(ctx context.Context, gameID int) (*store.Game, error) {
	return s.gameRepo.GetByID(ctx, gameID)
}

// ListAttendedGames returns attended games, most recent first
func (s *GameService) ListAttendedGames(ctx context.Context, limit int) ([]*store.Game, error) {
	return s.gameRepo.List(ctx, limit)
}

// DeleteGame removes an attended game and its satellite rows
func (s *GameService) DeleteGame(ctx context.Context, gameID int) error {
	return s.gameRepo.Delete(ctx, gameID)
}

// BoxScoreDetail is a stored game with all its satellite rows.
type BoxScoreDetail struct {
	Game          *store.Game             `json:"game"`
	QuarterScores []*store.QuarterScore   `json:"quarter_scores"`
	TeamLines     []*store.TeamLine       `json:"team_lines"`
	PlayerLines   []*store.PlayerLine     `json:"player_lines"`
	Inactive      []*store.InactivePlayer `json:"inactive"`
}

// GetBoxScore assembles the stored box score for an attended game
func (s *GameService) GetBoxScore(ctx context.Context, gameID int) (*BoxScoreDetail, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	quarterScores, err := s.gameRepo.GetQuarterScores(ctx, gameID)
	if err != nil {
		return nil, err
	}
	teamLines, err := s.gameRepo.GetTeamLines(ctx, gameID)
	if err != nil {
		return nil, err
	}
	playerLines, err := s.gameRepo.GetPlayerLines(ctx, gameID)
	if err != nil {
		return nil, err
	}
	inactive, err := s.gameRepo.GetInactivePlayers(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return &BoxScoreDetail{
		Game:          game,
		QuarterScores: quarterScores,
		TeamLines:     teamLines,
		PlayerLines:   playerLines,
		Inactive:      inactive,
	}, nil
}

// fetchPage fetches markup through the cache when one is configured.
func (s *GameService) fetchPage(ctx context.Context, url string) (string, error) {
	if s.cache != nil {
		cached, err := s.cache.GetPage(ctx, url)
		if err != nil {
			log.Printf("Cache read failed for %s: %v", url, err)
		} else if cached != "" {
			return cached, nil
		}
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, url, html); err != nil {
			log.Printf("Cache write failed for %s: %v", url, err)
		}
	}

	return html, nil
}

func (s *GameService) buildGame(req SaveGameRequest, scraped *ScrapedBoxScore) *store.Game {
	// The source lists the away team first in the line score.
	awayKey := bref.NormalizeTeamKey(scraped.LineScore[0].Team)
	homeKey := awayKey
	if len(scraped.LineScore) > 1 {
		homeKey = bref.NormalizeTeamKey(scraped.LineScore[1].Team)
	}

	homeTeam, awayTeam := req.HomeTeam, req.AwayTeam
	if homeTeam == "" {
		homeTeam = homeKey
	}
	if awayTeam == "" {
		awayTeam = awayKey
	}

	game := &store.Game{
		GameDate:     req.Date,
		HomeTeam:     homeTeam,
		AwayTeam:     awayTeam,
		Arena:        toNullString(req.Arena),
		ExternalID:   toNullString(req.ExternalID),
		SeatSection:  toNullString(req.SeatSection),
		SeatRow:      toNullString(req.SeatRow),
		SeatNumber:   toNullString(req.SeatNumber),
		AttendedWith: toNullString(req.AttendedWith),
		Notes:        toNullString(req.Notes),
		PlayoffInfo:  toNullString(scraped.Playoff.Label()),
		Season:       toNullString(SeasonForDate(req.Date)),
	}

	if len(scraped.LineScore) > 1 {
		game.AwayScore = toNullInt32(scraped.LineScore[0].Periods["t"])
		game.HomeScore = toNullInt32(scraped.LineScore[1].Periods["t"])
	}
	game.OvertimeInfo = toNullString(scraped.LineScore[0].OvertimeInfo)

	if scraped.Metadata.Attendance != nil {
		game.Attendance = toNullInt32(*scraped.Metadata.Attendance)
	}
	if scraped.Metadata.TimeOfGame != nil {
		game.Duration = toNullString(*scraped.Metadata.TimeOfGame)
	}
	if scraped.Metadata.Officials != nil {
		game.Officials = toNullString(*scraped.Metadata.Officials)
	}

	return game
}

func buildQuarterScores(gameID int, lineScore []bref.LineScoreRow) []store.QuarterScore {
	var scores []store.QuarterScore
	for _, ls := range lineScore {
		team := bref.NormalizeTeamKey(ls.Team)
		for period, raw := range ls.Periods {
			scores = append(scores, store.QuarterScore{
				GameID: gameID,
				Team:   team,
				Period: period,
				Points: toNullInt32(raw),
			})
		}
	}
	return scores
}

func buildTeamLines(gameID int, totals []bref.TeamTotalsRow, fourFactors []bref.FourFactorsRow) []store.TeamLine {
	linesByTeam := make(map[string]*store.TeamLine)
	var order []string

	team := func(key string) *store.TeamLine {
		if line, ok := linesByTeam[key]; ok {
			return line
		}
		line := &store.TeamLine{GameID: gameID, Team: key}
		linesByTeam[key] = line
		order = append(order, key)
		return line
	}

	for _, ff := range fourFactors {
		line := team(bref.NormalizeTeamKey(ff.Team))
		line.EFGPct = toNullString(ff.EFGPct)
		line.TOVPct = toNullString(ff.TOVPct)
		line.ORBPct = toNullString(ff.ORBPct)
		line.FTRate = toNullString(ff.FTRate)
	}

	// Totals are one row per table category; keep the first per team.
	for _, tot := range totals {
		line := team(bref.NormalizeTeamKey(tot.Team))
		if line.Totals.Valid {
			continue
		}
		if encoded, err := json.Marshal(tot.Stats); err == nil {
			line.Totals = toNullString(string(encoded))
		}
	}

	lines := make([]store.TeamLine, 0, len(order))
	for _, key := range order {
		lines = append(lines, *linesByTeam[key])
	}
	return lines
}

func buildPlayerLines(gameID int, players []bref.PlayerBoxRow) []store.PlayerLine {
	lines := make([]store.PlayerLine, 0, len(players))
	for _, p := range players {
		line := store.PlayerLine{
			GameID: gameID,
			Player: p.Player,
			Team:   bref.NormalizeTeamKey(p.Team),
			Role:   toNullString(string(p.Role)),
		}
		if encoded, err := json.Marshal(p.Stats); err == nil {
			line.Stats = toNullString(string(encoded))
		}
		lines = append(lines, line)
	}
	return lines
}

func buildInactivePlayers(gameID int, inactive []bref.InactivePlayerRecord) []store.InactivePlayer {
	players := make([]store.InactivePlayer, 0, len(inactive))
	for _, rec := range inactive {
		players = append(players, store.InactivePlayer{
			GameID: gameID,
			Player: rec.Player,
			Team:   bref.NormalizeTeamKey(rec.Team),
			Reason: rec.Reason,
		})
	}
	return players
}

func toNullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// toNullInt32 coerces a scraped numeric string. Parse failures null the
// column rather than raising or defaulting to zero.
func toNullInt32(raw string) sql.NullInt32 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return sql.NullInt32{}
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(n), Valid: true}
}
