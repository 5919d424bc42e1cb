package bref

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractBoxScore extracts per-player rows and per-table team totals from a
// box-score page. Team abbreviations are discovered from the line score; a
// page with no resolvable teams returns empty results. A missing table for
// a team/category contributes zero rows, never an error.
//
// Rows for the same (player, team) from different category tables are
// merged with outer-join semantics: fields absent in one table are simply
// absent from the map, not dropped rows.
func ExtractBoxScore(html string) ([]PlayerBoxRow, []TeamTotalsRow, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, nil, err
	}

	lineScore, _, err := ExtractLineScoreFourFactors(html)
	if err != nil {
		return nil, nil, err
	}
	if len(lineScore) == 0 {
		return nil, nil, nil
	}

	playoffLabel := GameContext(html).Label()

	var players []PlayerBoxRow
	var totals []TeamTotalsRow

	for _, ls := range lineScore {
		team := strings.TrimSpace(ls.Team)
		prefix := "box-" + team + "-"

		byPlayer := make(map[string]*PlayerBoxRow)
		var order []string

		doc.Find("table").Each(func(i int, table *goquery.Selection) {
			id, ok := table.Attr("id")
			if !ok || !strings.HasPrefix(id, prefix) {
				return
			}
			category := tableCategory(id)

			extractPlayerRows(table, team, category, byPlayer, &order)

			if tot, ok := extractTeamTotals(table, team, playoffLabel); ok {
				totals = append(totals, tot)
			}
		})

		for _, name := range order {
			players = append(players, *byPlayer[name])
		}
	}

	return players, totals, nil
}

// tableCategory derives the stat category from a table identifier like
// "box-BOS-game-basic" or "box-BOS-q1-basic": the second-to-last token,
// unless that token is the full-game marker, in which case the last.
func tableCategory(id string) string {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return id
	}
	category := parts[len(parts)-2]
	if category == "game" {
		category = parts[len(parts)-1]
	}
	return category
}

// extractPlayerRows reads a category table's data rows into the per-team
// accumulator. Separator rows (the "Reserves" label) are skipped but still
// count toward the starter cutoff, which is how the source lays the table
// out: five starters, a separator, then reserves.
func extractPlayerRows(table *goquery.Selection, team, category string, byPlayer map[string]*PlayerBoxRow, order *[]string) {
	table.Find("tbody tr").Each(func(idx int, tr *goquery.Selection) {
		playerCell := tr.Find("th").First()
		if playerCell.Length() == 0 || strings.Contains(playerCell.Text(), "Reserves") {
			return
		}
		player := strings.TrimSpace(playerCell.Text())
		if player == "" {
			return
		}

		stats := make(map[string]string)
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			statKey, ok := td.Attr("data-stat")
			if !ok || statKey == "" {
				return
			}
			stats[statKey+"_"+category] = strings.TrimSpace(td.Text())
		})

		row, exists := byPlayer[player]
		if !exists {
			row = &PlayerBoxRow{Player: player, Team: team, Stats: make(map[string]string)}
			byPlayer[player] = row
			*order = append(*order, player)
		}
		for k, v := range stats {
			row.Stats[k] = v
		}

		// Roles come from the basic table only. A populated reason
		// field means the player did not dress.
		if category == CategoryBasic {
			switch {
			case stats["reason_"+category] != "":
				row.Role = RoleInactive
			case idx < StarterCount:
				row.Role = RoleStarter
			default:
				row.Role = RoleReserve
			}
		}
	})
}

// extractTeamTotals reads the footer totals row of a table. Returns false
// when the table has no footer.
func extractTeamTotals(table *goquery.Selection, team, playoffLabel string) (TeamTotalsRow, bool) {
	footerRow := table.Find("tfoot tr").First()
	if footerRow.Length() == 0 {
		return TeamTotalsRow{}, false
	}

	stats := make(map[string]string)
	footerRow.Find("td").Each(func(i int, td *goquery.Selection) {
		statKey, ok := td.Attr("data-stat")
		if !ok || statKey == "" {
			return
		}
		stats["team_total_"+statKey] = strings.TrimSpace(td.Text())
	})
	if len(stats) == 0 {
		return TeamTotalsRow{}, false
	}

	return TeamTotalsRow{
		Team:        team,
		PlayoffInfo: playoffLabel,
		Stats:       stats,
	}, true
}
