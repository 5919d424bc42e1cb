package store

import (
	"database/sql"
	"time"
)

// Game represents one attended basketball game: the official result plus
// the personal attendance details logged with it.
type Game struct {
	GameID       int            `json:"game_id" db:"game_id"`
	GameDate     time.Time      `json:"game_date" db:"game_date"`
	HomeTeam     string         `json:"home_team" db:"home_team"`
	AwayTeam     string         `json:"away_team" db:"away_team"`
	HomeScore    sql.NullInt32  `json:"home_score,omitempty" db:"home_score"`
	AwayScore    sql.NullInt32  `json:"away_score,omitempty" db:"away_score"`
	Arena        sql.NullString `json:"arena,omitempty" db:"arena"`
	ExternalID   sql.NullString `json:"external_id,omitempty" db:"external_id"`
	SeatSection  sql.NullString `json:"seat_section,omitempty" db:"seat_section"`
	SeatRow      sql.NullString `json:"seat_row,omitempty" db:"seat_row"`
	SeatNumber   sql.NullString `json:"seat_number,omitempty" db:"seat_number"`
	AttendedWith sql.NullString `json:"attended_with,omitempty" db:"attended_with"`
	Notes        sql.NullString `json:"notes,omitempty" db:"notes"`
	Attendance   sql.NullInt32  `json:"attendance,omitempty" db:"attendance"`
	Duration     sql.NullString `json:"duration,omitempty" db:"duration"`
	Officials    sql.NullString `json:"officials,omitempty" db:"officials"`
	PlayoffInfo  sql.NullString `json:"playoff_info,omitempty" db:"playoff_info"`
	OvertimeInfo sql.NullString `json:"overtime_info,omitempty" db:"overtime_info"`
	Season       sql.NullString `json:"season,omitempty" db:"season"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// QuarterScore is one team's points in one period of a game. Period labels
// follow the line score: "1".."4", "ot1".."otN", "t".
type QuarterScore struct {
	ID     int           `json:"id" db:"id"`
	GameID int           `json:"game_id" db:"game_id"`
	Team   string        `json:"team" db:"team"`
	Period string        `json:"period" db:"period"`
	Points sql.NullInt32 `json:"points,omitempty" db:"points"`
}

// TeamLine is one team's game-level stats: four factors plus the raw
// totals-row fields stored as JSON.
type TeamLine struct {
	ID     int            `json:"id" db:"id"`
	GameID int            `json:"game_id" db:"game_id"`
	Team   string         `json:"team" db:"team"`
	EFGPct sql.NullString `json:"efg_pct,omitempty" db:"efg_pct"`
	TOVPct sql.NullString `json:"tov_pct,omitempty" db:"tov_pct"`
	ORBPct sql.NullString `json:"orb_pct,omitempty" db:"orb_pct"`
	FTRate sql.NullString `json:"ft_rate,omitempty" db:"ft_rate"`
	Totals sql.NullString `json:"totals,omitempty" db:"totals"`
}

// PlayerLine is one player's stat line for a game. Stats holds the raw
// category-suffixed fields as JSON.
type PlayerLine struct {
	ID     int            `json:"id" db:"id"`
	GameID int            `json:"game_id" db:"game_id"`
	Player string         `json:"player" db:"player"`
	Team   string         `json:"team" db:"team"`
	Role   sql.NullString `json:"role,omitempty" db:"role"`
	Stats  sql.NullString `json:"stats,omitempty" db:"stats"`
}

// InactivePlayer is a rostered player who did not play in a game.
type InactivePlayer struct {
	ID     int    `json:"id" db:"id"`
	GameID int    `json:"game_id" db:"game_id"`
	Player string `json:"player" db:"player"`
	Team   string `json:"team" db:"team"`
	Reason string `json:"reason" db:"reason"`
}

// Photo is a photo taken at an attended game. The image file lives on
// disk; the row stores its path.
type Photo struct {
	ID        int            `json:"id" db:"id"`
	GameID    int            `json:"game_id" db:"game_id"`
	FilePath  string         `json:"file_path" db:"file_path"`
	Caption   sql.NullString `json:"caption,omitempty" db:"caption"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
