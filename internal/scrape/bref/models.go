package bref

import "fmt"

// Role classifies a player's participation in a single game.
type Role string

const (
	RoleStarter  Role = "Starter"
	RoleReserve  Role = "Reserve"
	RoleInactive Role = "Inactive"
)

// StarterCount is the number of rows at the top of a basic box-score table
// that the source lays out as the starting lineup.
const StarterCount = 5

// CategoryBasic is the table category that carries the role convention.
const CategoryBasic = "basic"

// InactiveReason is the constant reason attached to inactive-list players.
const InactiveReason = "Inactive"

// ScheduleEntry is one game found on a day's schedule page.
type ScheduleEntry struct {
	Winner      string `json:"winner"`
	WinnerScore int    `json:"winner_score"`
	Loser       string `json:"loser"`
	LoserScore  int    `json:"loser_score"`
	BoxScoreURL string `json:"box_score_url"`
}

// PlayerBoxRow is one player's merged stat line for a game. Stats is keyed
// "<stat>_<category>" (e.g. "pts_basic") so same-named stats from different
// tables do not collide; all values are raw strings as rendered.
type PlayerBoxRow struct {
	Player string            `json:"player"`
	Team   string            `json:"team"`
	Role   Role              `json:"role,omitempty"`
	Stats  map[string]string `json:"stats"`
}

// TeamTotalsRow is a table's footer totals for one team, keyed
// "team_total_<stat>". One row is produced per team per table category.
type TeamTotalsRow struct {
	Team        string            `json:"team"`
	PlayoffInfo string            `json:"playoff_info"`
	Stats       map[string]string `json:"stats"`
}

// LineScoreRow holds per-period scores for one team. Periods is keyed by the
// source column label: "1".."4", "ot1".."otN", and "t" for the total.
type LineScoreRow struct {
	Team         string            `json:"team"`
	Periods      map[string]string `json:"periods"`
	OvertimeInfo string            `json:"overtime_info"`
}

// FourFactorsRow holds the four efficiency metrics for one team.
type FourFactorsRow struct {
	Team   string `json:"team"`
	EFGPct string `json:"efg_pct"`
	TOVPct string `json:"tov_pct"`
	ORBPct string `json:"orb_pct"`
	FTRate string `json:"ft_rate"`
}

// InactivePlayerRecord is a rostered player who did not play.
type InactivePlayerRecord struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	Reason string `json:"reason"`
}

// GameMetadata holds the free-text fields scraped from outside any table.
// A nil field means the label was not found on the page.
type GameMetadata struct {
	Officials  *string `json:"officials,omitempty"`
	Attendance *string `json:"attendance,omitempty"`
	TimeOfGame *string `json:"time_of_game,omitempty"`
}

// PlayoffInfo describes the playoff context of a game, if any.
type PlayoffInfo struct {
	IsPlayoff  bool   `json:"is_playoff"`
	Round      string `json:"round,omitempty"`
	GameNumber int    `json:"game_number,omitempty"`
}

// Label renders the context the way it is stored ("NBA Finals Game 3",
// or "Regular Season" for non-playoff games).
func (p PlayoffInfo) Label() string {
	if !p.IsPlayoff {
		return "Regular Season"
	}
	return fmt.Sprintf("%s Game %d", p.Round, p.GameNumber)
}

// MergedRow is one player's row in the unified table: their own stat fields
// plus a copy of their team's aggregate figures. Aggregates is nil for
// inactive players and for rows whose team matched no aggregate source;
// keys are prefixed "team_total_", "line_score_" or "four_factors_".
type MergedRow struct {
	Player      string            `json:"player"`
	Team        string            `json:"team"`
	Role        Role              `json:"role,omitempty"`
	Stats       map[string]string `json:"stats"`
	PlayoffInfo string            `json:"playoff_info,omitempty"`
	Aggregates  map[string]string `json:"aggregates,omitempty"`
}
