package bref

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// standardPeriods is the non-overtime column count: four quarters plus the
// total column.
const standardPeriods = 5

var (
	lineScoreTableRe   = regexp.MustCompile(`(?s)<table[^>]*id="line_score".*?</table>`)
	fourFactorsTableRe = regexp.MustCompile(`(?s)<table[^>]*id="four_factors".*?</table>`)
	playoffRoundRe     = regexp.MustCompile(`(?i)(NBA Finals|Conference Finals|First Round|Second Round|Play-In Tournament),?\s*Game (\d+)`)
)

// ExtractLineScoreFourFactors pulls the two summary tables from a box-score
// page. Both tables are often shipped inside HTML comments, so when a table
// is not in the live DOM the raw markup is searched for it directly. A page
// missing either table yields an empty slice for that table, never an error.
func ExtractLineScoreFourFactors(html string) ([]LineScoreRow, []FourFactorsRow, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, nil, err
	}

	lineScore := extractLineScore(findTable(doc, html, "line_score", lineScoreTableRe))
	fourFactors := extractFourFactors(findTable(doc, html, "four_factors", fourFactorsTableRe))

	return lineScore, fourFactors, nil
}

// findTable locates a table by id in the parsed document, falling back to a
// raw-markup scan for tables hidden in comments.
func findTable(doc *goquery.Document, html, id string, re *regexp.Regexp) *goquery.Selection {
	table := doc.Find("table#" + id)
	if table.Length() > 0 {
		return table.First()
	}

	fragment := re.FindString(html)
	if fragment == "" {
		return nil
	}
	fragDoc, err := ParseHTML(fragment)
	if err != nil {
		return nil
	}
	table = fragDoc.Find("table")
	if table.Length() == 0 {
		return nil
	}
	return table.First()
}

// extractLineScore reads per-period scores. Period columns are detected from
// the headers: purely numeric labels, labels containing "ot", and the "t"
// total marker; everything else is ignored. The overtime label is shared by
// both team rows since both teams play the same periods.
func extractLineScore(table *goquery.Selection) []LineScoreRow {
	if table == nil {
		return nil
	}

	var columns []string
	table.Find("thead th").Each(func(i int, th *goquery.Selection) {
		col := strings.ToLower(strings.TrimSpace(th.Text()))
		if isPeriodColumn(col) {
			columns = append(columns, col)
		}
	})

	overtimeInfo := "No OT"
	if extra := len(columns) - standardPeriods; extra > 0 {
		if extra > 1 {
			overtimeInfo = fmt.Sprintf("%dOT", extra)
		} else {
			overtimeInfo = "OT"
		}
	}

	var rows []LineScoreRow
	table.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		team := strings.TrimSpace(tr.Find("th").First().Text())
		if team == "" {
			return
		}

		periods := make(map[string]string)
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			if j < len(columns) {
				periods[columns[j]] = strings.TrimSpace(td.Text())
			}
		})

		rows = append(rows, LineScoreRow{
			Team:         team,
			Periods:      periods,
			OvertimeInfo: overtimeInfo,
		})
	})

	return rows
}

// extractFourFactors reads the four efficiency metrics per team row, in
// fixed column order.
func extractFourFactors(table *goquery.Selection) []FourFactorsRow {
	if table == nil {
		return nil
	}

	var rows []FourFactorsRow
	table.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		team := strings.TrimSpace(tr.Find("th").First().Text())
		if team == "" {
			return
		}

		var factors []string
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			factors = append(factors, strings.TrimSpace(td.Text()))
		})
		if len(factors) < 4 {
			return
		}

		rows = append(rows, FourFactorsRow{
			Team:   team,
			EFGPct: factors[0],
			TOVPct: factors[1],
			ORBPct: factors[2],
			FTRate: factors[3],
		})
	})

	return rows
}

func isPeriodColumn(col string) bool {
	if col == "" {
		return false
	}
	if col == "t" || strings.Contains(col, "ot") {
		return true
	}
	for _, r := range col {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GameContext scans the page text for a playoff round marker followed by a
// game number. No match means a regular-season game.
func GameContext(html string) PlayoffInfo {
	doc, err := ParseHTML(html)
	if err != nil {
		return PlayoffInfo{}
	}

	match := playoffRoundRe.FindStringSubmatch(doc.Text())
	if match == nil {
		return PlayoffInfo{}
	}

	gameNumber := 0
	fmt.Sscanf(match[2], "%d", &gameNumber)

	return PlayoffInfo{
		IsPlayoff:  true,
		Round:      match[1],
		GameNumber: gameNumber,
	}
}
