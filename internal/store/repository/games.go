package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ewint814/nba-game-tracker/internal/store"
)

// GameRepository handles attended-game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `game_id, game_date, home_team, away_team, home_score, away_score,
		arena, external_id, seat_section, seat_row, seat_number, attended_with, notes,
		attendance, duration, officials, playoff_info, overtime_info, season,
		created_at, updated_at`

// GetByID finds a game by its database ID
func (r *GameRepository) GetByID(ctx context.Context, gameID int) (*store.Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM games WHERE game_id = $1`, gameColumns)

	game := &store.Game{}
	err := scanGame(r.db.DB().QueryRowContext(ctx, query, gameID), game)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %d", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// GetByDate returns all attended games on a specific date
func (r *GameRepository) GetByDate(ctx context.Context, date time.Time) ([]*store.Game, error) {
	startOfDay := date.Truncate(24 * time.Hour)
	endOfDay := startOfDay.Add(24 * time.Hour)

	query := fmt.Sprintf(`
		SELECT %s FROM games
		WHERE game_date >= $1 AND game_date < $2
		ORDER BY game_date
	`, gameColumns)

	rows, err := r.db.DB().QueryContext(ctx, query, startOfDay, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// List returns all attended games, most recent first
func (r *GameRepository) List(ctx context.Context, limit int) ([]*store.Game, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM games
		ORDER BY game_date DESC
		LIMIT $1
	`, gameColumns)

	rows, err := r.db.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// Upsert inserts or updates a game, keyed by (date, home, away)
func (r *GameRepository) Upsert(ctx context.Context, game *store.Game) error {
	query := `
		INSERT INTO games (game_date, home_team, away_team, home_score, away_score,
			arena, external_id, seat_section, seat_row, seat_number, attended_with, notes,
			attendance, duration, officials, playoff_info, overtime_info, season)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (game_date, home_team, away_team) DO UPDATE SET
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			arena = EXCLUDED.arena,
			external_id = EXCLUDED.external_id,
			seat_section = EXCLUDED.seat_section,
			seat_row = EXCLUDED.seat_row,
			seat_number = EXCLUDED.seat_number,
			attended_with = EXCLUDED.attended_with,
			notes = EXCLUDED.notes,
			attendance = EXCLUDED.attendance,
			duration = EXCLUDED.duration,
			officials = EXCLUDED.officials,
			playoff_info = EXCLUDED.playoff_info,
			overtime_info = EXCLUDED.overtime_info,
			season = EXCLUDED.season,
			updated_at = NOW()
		RETURNING game_id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		game.GameDate, game.HomeTeam, game.AwayTeam, game.HomeScore, game.AwayScore,
		game.Arena, game.ExternalID, game.SeatSection, game.SeatRow, game.SeatNumber,
		game.AttendedWith, game.Notes, game.Attendance, game.Duration, game.Officials,
		game.PlayoffInfo, game.OvertimeInfo, game.Season,
	).Scan(&game.GameID)

	if err != nil {
		return fmt.Errorf("upserting game: %w", err)
	}

	return nil
}

// Delete removes a game and its satellite rows (cascade)
func (r *GameRepository) Delete(ctx context.Context, gameID int) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM games WHERE game_id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("game not found: %d", gameID)
	}

	return nil
}

// SaveBoxScore replaces a game's satellite rows (quarter scores, team
// lines, player lines, inactive players) in one transaction.
func (r *GameRepository) SaveBoxScore(ctx context.Context, gameID int,
	quarterScores []store.QuarterScore, teamLines []store.TeamLine,
	playerLines []store.PlayerLine, inactive []store.InactivePlayer) error {

	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"quarter_scores", "team_lines", "player_lines", "inactive_players"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE game_id = $1`, table), gameID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, qs := range quarterScores {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO quarter_scores (game_id, team, period, points)
			VALUES ($1, $2, $3, $4)
		`, gameID, qs.Team, qs.Period, qs.Points)
		if err != nil {
			return fmt.Errorf("inserting quarter score: %w", err)
		}
	}

	for _, tl := range teamLines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO team_lines (game_id, team, efg_pct, tov_pct, orb_pct, ft_rate, totals)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, gameID, tl.Team, tl.EFGPct, tl.TOVPct, tl.ORBPct, tl.FTRate, tl.Totals)
		if err != nil {
			return fmt.Errorf("inserting team line: %w", err)
		}
	}

	for _, pl := range playerLines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO player_lines (game_id, player, team, role, stats)
			VALUES ($1, $2, $3, $4, $5)
		`, gameID, pl.Player, pl.Team, pl.Role, pl.Stats)
		if err != nil {
			return fmt.Errorf("inserting player line: %w", err)
		}
	}

	for _, ip := range inactive {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO inactive_players (game_id, player, team, reason)
			VALUES ($1, $2, $3, $4)
		`, gameID, ip.Player, ip.Team, ip.Reason)
		if err != nil {
			return fmt.Errorf("inserting inactive player: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing box score: %w", err)
	}

	return nil
}

// GetQuarterScores returns a game's per-period scores
func (r *GameRepository) GetQuarterScores(ctx context.Context, gameID int) ([]*store.QuarterScore, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, game_id, team, period, points
		FROM quarter_scores
		WHERE game_id = $1
		ORDER BY team, period
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying quarter scores: %w", err)
	}
	defer rows.Close()

	var scores []*store.QuarterScore
	for rows.Next() {
		qs := &store.QuarterScore{}
		if err := rows.Scan(&qs.ID, &qs.GameID, &qs.Team, &qs.Period, &qs.Points); err != nil {
			return nil, fmt.Errorf("scanning quarter score: %w", err)
		}
		scores = append(scores, qs)
	}

	return scores, rows.Err()
}

// GetTeamLines returns a game's team stat lines
func (r *GameRepository) GetTeamLines(ctx context.Context, gameID int) ([]*store.TeamLine, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, game_id, team, efg_pct, tov_pct, orb_pct, ft_rate, totals
		FROM team_lines
		WHERE game_id = $1
		ORDER BY team
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying team lines: %w", err)
	}
	defer rows.Close()

	var lines []*store.TeamLine
	for rows.Next() {
		tl := &store.TeamLine{}
		if err := rows.Scan(&tl.ID, &tl.GameID, &tl.Team, &tl.EFGPct, &tl.TOVPct, &tl.ORBPct, &tl.FTRate, &tl.Totals); err != nil {
			return nil, fmt.Errorf("scanning team line: %w", err)
		}
		lines = append(lines, tl)
	}

	return lines, rows.Err()
}

// GetPlayerLines returns a game's player stat lines
func (r *GameRepository) GetPlayerLines(ctx context.Context, gameID int) ([]*store.PlayerLine, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, game_id, player, team, role, stats
		FROM player_lines
		WHERE game_id = $1
		ORDER BY team, id
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying player lines: %w", err)
	}
	defer rows.Close()

	var lines []*store.PlayerLine
	for rows.Next() {
		pl := &store.PlayerLine{}
		if err := rows.Scan(&pl.ID, &pl.GameID, &pl.Player, &pl.Team, &pl.Role, &pl.Stats); err != nil {
			return nil, fmt.Errorf("scanning player line: %w", err)
		}
		lines = append(lines, pl)
	}

	return lines, rows.Err()
}

// GetInactivePlayers returns a game's inactive list
func (r *GameRepository) GetInactivePlayers(ctx context.Context, gameID int) ([]*store.InactivePlayer, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, game_id, player, team, reason
		FROM inactive_players
		WHERE game_id = $1
		ORDER BY team, player
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying inactive players: %w", err)
	}
	defer rows.Close()

	var players []*store.InactivePlayer
	for rows.Next() {
		ip := &store.InactivePlayer{}
		if err := rows.Scan(&ip.ID, &ip.GameID, &ip.Player, &ip.Team, &ip.Reason); err != nil {
			return nil, fmt.Errorf("scanning inactive player: %w", err)
		}
		players = append(players, ip)
	}

	return players, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner, game *store.Game) error {
	return row.Scan(
		&game.GameID, &game.GameDate, &game.HomeTeam, &game.AwayTeam,
		&game.HomeScore, &game.AwayScore, &game.Arena, &game.ExternalID,
		&game.SeatSection, &game.SeatRow, &game.SeatNumber, &game.AttendedWith,
		&game.Notes, &game.Attendance, &game.Duration, &game.Officials,
		&game.PlayoffInfo, &game.OvertimeInfo, &game.Season,
		&game.CreatedAt, &game.UpdatedAt,
	)
}

// scanGames scans multiple game rows
func (r *GameRepository) scanGames(rows *sql.Rows) ([]*store.Game, error) {
	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		if err := scanGame(rows, game); err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
