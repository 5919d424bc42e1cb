package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ewint814/nba-game-tracker/internal/store"
	"github.com/ewint814/nba-game-tracker/internal/store/repository"
)

// StatsService answers aggregate questions about attended games
type StatsService struct {
	statsRepo *repository.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(db *store.Database) *StatsService {
	return &StatsService{
		statsRepo: repository.NewStatsRepository(db),
	}
}

// Summary aggregates attendance history into dashboard figures.
type Summary struct {
	GamesAttended int            `json:"games_attended"`
	TeamRecord    *TeamRecord    `json:"team_record,omitempty"`
	OvertimeGames int            `json:"overtime_games"`
	PlayoffGames  int            `json:"playoff_games"`
	Arenas        map[string]int `json:"arenas"`
	Seasons       map[string]int `json:"seasons"`
	HighestTotal  *store.Game    `json:"highest_scoring_game,omitempty"`
}

// TeamRecord is a followed team's W/L across attended games.
type TeamRecord struct {
	Team   string `json:"team"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Record string `json:"record"`
}

// GetSummary builds the aggregate view. When team is non-empty, the
// summary includes that team's record across attended games.
func (s *StatsService) GetSummary(ctx context.Context, team string) (*Summary, error) {
	count, err := s.statsRepo.CountGames(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{GamesAttended: count}
	if count == 0 {
		return summary, nil
	}

	if team != "" {
		wins, losses, err := s.statsRepo.TeamRecord(ctx, team)
		if err != nil {
			return nil, err
		}
		summary.TeamRecord = &TeamRecord{
			Team:   team,
			Wins:   wins,
			Losses: losses,
			Record: fmt.Sprintf("%d-%d", wins, losses),
		}
	}

	summary.OvertimeGames, err = s.statsRepo.CountOvertimeGames(ctx)
	if err != nil {
		return nil, err
	}
	summary.PlayoffGames, err = s.statsRepo.CountPlayoffGames(ctx)
	if err != nil {
		return nil, err
	}
	summary.Arenas, err = s.statsRepo.ArenaCounts(ctx)
	if err != nil {
		return nil, err
	}
	summary.Seasons, err = s.statsRepo.SeasonCounts(ctx)
	if err != nil {
		return nil, err
	}

	if game, err := s.statsRepo.HighestScoringGame(ctx); err == nil {
		summary.HighestTotal = game
	}

	return summary, nil
}

// FormatSeason converts a season start year to the full season label
// ("2024" -> "2024-2025").
func FormatSeason(startYear int) string {
	return strconv.Itoa(startYear) + "-" + strconv.Itoa(startYear+1)
}

// SeasonForDate determines the NBA season a date falls in. October through
// December belong to the season starting that year; January through June to
// the season that started the previous year.
func SeasonForDate(date time.Time) string {
	switch {
	case date.Month() >= time.October:
		return FormatSeason(date.Year())
	case date.Month() <= time.June:
		return FormatSeason(date.Year() - 1)
	default:
		return FormatSeason(date.Year())
	}
}

// SeriesStats is a pre-game playoff series record reconstructed from
// post-game numbers.
type SeriesStats struct {
	PregameHomeWins   int    `json:"pregame_home_wins"`
	PregameHomeLosses int    `json:"pregame_home_losses"`
	PregameLeader     string `json:"pregame_leader,omitempty"`
	PregameRecord     string `json:"pregame_series_record"`
}

// CalculateSeriesStats backs the just-played game out of a post-game series
// record. The leader is empty when the series was tied going in.
func CalculateSeriesStats(homeScore, awayScore, postHomeWins, postHomeLosses int, homeAbbrev, awayAbbrev string) SeriesStats {
	preWins, preLosses := postHomeWins, postHomeLosses
	if homeScore > awayScore {
		preWins--
	} else {
		preLosses--
	}

	leader := ""
	if preWins > preLosses {
		leader = homeAbbrev
	} else if preWins < preLosses {
		leader = awayAbbrev
	}

	return SeriesStats{
		PregameHomeWins:   preWins,
		PregameHomeLosses: preLosses,
		PregameLeader:     leader,
		PregameRecord:     fmt.Sprintf("%d-%d", preWins, preLosses),
	}
}
