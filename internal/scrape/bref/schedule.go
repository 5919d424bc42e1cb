package bref

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseSchedule scans a day's schedule page for game summary blocks and
// returns one entry per game, in document order. When teamFilter is
// non-empty, only games where the filter is a substring of the winner or
// loser name are kept ("Boston" matches "Boston Celtics").
//
// A malformed block never fails the whole page: a missing winner or loser
// row yields sentinel values, and a block without a box-score link is
// skipped entirely.
func ParseSchedule(html string, teamFilter string) ([]ScheduleEntry, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	var games []ScheduleEntry
	doc.Find("div.game_summary.expanded.nohover").Each(func(i int, s *goquery.Selection) {
		entry, ok := parseGameSummary(s)
		if !ok {
			return
		}
		if teamFilter != "" &&
			!strings.Contains(entry.Winner, teamFilter) &&
			!strings.Contains(entry.Loser, teamFilter) {
			return
		}
		games = append(games, entry)
	})

	return games, nil
}

// parseGameSummary reads one game summary block. Returns false only when
// the block has no box-score link to follow.
func parseGameSummary(s *goquery.Selection) (ScheduleEntry, bool) {
	teams := s.Find("table.teams")

	winner := teams.Find("tr.winner").First()
	loser := teams.Find("tr.loser").First()

	entry := ScheduleEntry{
		Winner:      "Unknown",
		Loser:       "Unknown",
		WinnerScore: 0,
		LoserScore:  0,
	}

	if winner.Length() > 0 {
		entry.Winner = strings.TrimSpace(winner.Find("td").First().Text())
		entry.WinnerScore = parseScore(winner.Find("td.right").First().Text())
	}
	if loser.Length() > 0 {
		entry.Loser = strings.TrimSpace(loser.Find("td").First().Text())
		entry.LoserScore = parseScore(loser.Find("td.right").First().Text())
	}

	href, ok := s.Find("p.links a[href]").First().Attr("href")
	if !ok || href == "" {
		return entry, false
	}
	entry.BoxScoreURL = absoluteURL(href)

	return entry, true
}

// parseScore reads a score cell, falling back to 0 for malformed text so a
// single bad block cannot abort the page.
func parseScore(text string) int {
	score, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// absoluteURL resolves a site-relative href against the base domain.
func absoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return BaseURL + href
}
