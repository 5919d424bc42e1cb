package bref

import "strings"

// NormalizeTeamKey uppercases and trims a team abbreviation so joins across
// table kinds are case and whitespace insensitive. Idempotent.
func NormalizeTeamKey(team string) string {
	return strings.ToUpper(strings.TrimSpace(team))
}

// InactiveBoxRow converts an inactive-list record into a player row so it
// can ride through the merge alongside scraped box-score rows.
func InactiveBoxRow(rec InactivePlayerRecord) PlayerBoxRow {
	return PlayerBoxRow{
		Player: rec.Player,
		Team:   rec.Team,
		Role:   RoleInactive,
		Stats:  map[string]string{"reason_" + CategoryBasic: rec.Reason},
	}
}

// Merge joins player rows with team-level aggregates keyed on the
// normalized team abbreviation. Team totals are deduplicated keep-first
// before joining. Every active player on a team receives an identical copy
// of that team's totals, line score and four factors; inactive players get
// no aggregates, since team figures attached to a non-participant are
// meaningless.
//
// A row whose team matches no aggregate source is kept, unjoined, with nil
// aggregates rather than silently dropped.
func Merge(players []PlayerBoxRow, totals []TeamTotalsRow, lineScore []LineScoreRow, fourFactors []FourFactorsRow) []MergedRow {
	totalsByTeam := make(map[string]TeamTotalsRow)
	for _, t := range totals {
		key := NormalizeTeamKey(t.Team)
		if _, seen := totalsByTeam[key]; !seen {
			totalsByTeam[key] = t
		}
	}

	lineScoreByTeam := make(map[string]LineScoreRow, len(lineScore))
	for _, ls := range lineScore {
		lineScoreByTeam[NormalizeTeamKey(ls.Team)] = ls
	}

	fourFactorsByTeam := make(map[string]FourFactorsRow, len(fourFactors))
	for _, ff := range fourFactors {
		fourFactorsByTeam[NormalizeTeamKey(ff.Team)] = ff
	}

	merged := make([]MergedRow, 0, len(players))
	for _, p := range players {
		key := NormalizeTeamKey(p.Team)
		row := MergedRow{
			Player: p.Player,
			Team:   key,
			Role:   p.Role,
			Stats:  p.Stats,
		}

		if p.Role == RoleInactive {
			merged = append(merged, row)
			continue
		}

		aggregates := make(map[string]string)
		if t, ok := totalsByTeam[key]; ok {
			for k, v := range t.Stats {
				aggregates[k] = v
			}
			row.PlayoffInfo = t.PlayoffInfo
		}
		if ls, ok := lineScoreByTeam[key]; ok {
			for period, score := range ls.Periods {
				aggregates["line_score_"+period] = score
			}
			aggregates["line_score_overtime_info"] = ls.OvertimeInfo
		}
		if ff, ok := fourFactorsByTeam[key]; ok {
			aggregates["four_factors_efg_pct"] = ff.EFGPct
			aggregates["four_factors_tov_pct"] = ff.TOVPct
			aggregates["four_factors_orb_pct"] = ff.ORBPct
			aggregates["four_factors_ft_rate"] = ff.FTRate
		}

		if len(aggregates) > 0 {
			row.Aggregates = aggregates
		}
		merged = append(merged, row)
	}

	return merged
}
