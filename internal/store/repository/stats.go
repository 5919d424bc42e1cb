package repository

import (
	"context"
	"fmt"

	"github.com/ewint814/nba-game-tracker/internal/store"
)

// StatsRepository answers aggregate questions about attended games
type StatsRepository struct {
	db *store.Database
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *store.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountGames returns the total number of attended games
func (r *StatsRepository) CountGames(ctx context.Context) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting games: %w", err)
	}
	return count, nil
}

// TeamRecord returns the win/loss record of a team across attended games.
// The team matches as a substring of the stored name ("Boston" matches
// "Boston Celtics"), mirroring how games are found by team.
func (r *StatsRepository) TeamRecord(ctx context.Context, team string) (wins, losses int, err error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE
				(home_team LIKE '%' || $1 || '%' AND home_score > away_score) OR
				(away_team LIKE '%' || $1 || '%' AND away_score > home_score)),
			COUNT(*) FILTER (WHERE
				(home_team LIKE '%' || $1 || '%' AND home_score < away_score) OR
				(away_team LIKE '%' || $1 || '%' AND away_score < home_score))
		FROM games
		WHERE home_score IS NOT NULL AND away_score IS NOT NULL
	`

	err = r.db.DB().QueryRowContext(ctx, query, team).Scan(&wins, &losses)
	if err != nil {
		return 0, 0, fmt.Errorf("querying team record: %w", err)
	}

	return wins, losses, nil
}

// ArenaCounts returns how many games were attended at each arena
func (r *StatsRepository) ArenaCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT arena, COUNT(*)
		FROM games
		WHERE arena IS NOT NULL
		GROUP BY arena
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying arena counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var arena string
		var count int
		if err := rows.Scan(&arena, &count); err != nil {
			return nil, fmt.Errorf("scanning arena count: %w", err)
		}
		counts[arena] = count
	}

	return counts, rows.Err()
}

// CountOvertimeGames returns the number of attended games that went to OT
func (r *StatsRepository) CountOvertimeGames(ctx context.Context) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT COUNT(*) FROM games
		WHERE overtime_info IS NOT NULL AND overtime_info != 'No OT'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting overtime games: %w", err)
	}
	return count, nil
}

// CountPlayoffGames returns the number of attended playoff games
func (r *StatsRepository) CountPlayoffGames(ctx context.Context) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT COUNT(*) FROM games
		WHERE playoff_info IS NOT NULL AND playoff_info != 'Regular Season'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting playoff games: %w", err)
	}
	return count, nil
}

// SeasonCounts returns games attended per season
func (r *StatsRepository) SeasonCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT season, COUNT(*)
		FROM games
		WHERE season IS NOT NULL
		GROUP BY season
		ORDER BY season
	`)
	if err != nil {
		return nil, fmt.Errorf("querying season counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var season string
		var count int
		if err := rows.Scan(&season, &count); err != nil {
			return nil, fmt.Errorf("scanning season count: %w", err)
		}
		counts[season] = count
	}

	return counts, rows.Err()
}

// HighestScoringGame returns the attended game with the largest combined score
func (r *StatsRepository) HighestScoringGame(ctx context.Context) (*store.Game, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM games
		WHERE home_score IS NOT NULL AND away_score IS NOT NULL
		ORDER BY home_score + away_score DESC
		LIMIT 1
	`, gameColumns)

	game := &store.Game{}
	err := scanGame(r.db.DB().QueryRowContext(ctx, query), game)
	if err != nil {
		return nil, fmt.Errorf("querying highest scoring game: %w", err)
	}

	return game, nil
}
