package nbastats

import "fmt"

// TeamDirectory maps stats-API franchise IDs to full team names. It is
// constructed once per client and passed by reference to every call that
// needs it.
type TeamDirectory map[int]string

// Name resolves a team ID, labeling unknown IDs rather than dropping them.
func (d TeamDirectory) Name(teamID int) string {
	if name, ok := d[teamID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Team (%d)", teamID)
}

// DefaultTeamDirectory returns the 30 current NBA franchises.
func DefaultTeamDirectory() TeamDirectory {
	return TeamDirectory{
		1610612737: "Atlanta Hawks",
		1610612738: "Boston Celtics",
		1610612739: "Cleveland Cavaliers",
		1610612740: "New Orleans Pelicans",
		1610612741: "Chicago Bulls",
		1610612742: "Dallas Mavericks",
		1610612743: "Denver Nuggets",
		1610612744: "Golden State Warriors",
		1610612745: "Houston Rockets",
		1610612746: "LA Clippers",
		1610612747: "Los Angeles Lakers",
		1610612748: "Miami Heat",
		1610612749: "Milwaukee Bucks",
		1610612750: "Minnesota Timberwolves",
		1610612751: "Brooklyn Nets",
		1610612752: "New York Knicks",
		1610612753: "Orlando Magic",
		1610612754: "Indiana Pacers",
		1610612755: "Philadelphia 76ers",
		1610612756: "Phoenix Suns",
		1610612757: "Portland Trail Blazers",
		1610612758: "Sacramento Kings",
		1610612759: "San Antonio Spurs",
		1610612760: "Oklahoma City Thunder",
		1610612761: "Toronto Raptors",
		1610612762: "Utah Jazz",
		1610612763: "Memphis Grizzlies",
		1610612764: "Washington Wizards",
		1610612765: "Detroit Pistons",
		1610612766: "Charlotte Hornets",
	}
}
