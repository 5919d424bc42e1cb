package bref

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	officialsRe  = regexp.MustCompile(`(?s)Officials:.*?<a.*?</div>`)
	anchorTextRe = regexp.MustCompile(`<a.*?>(.*?)</a>`)
	attendanceRe = regexp.MustCompile(`(?s)Attendance:.*?</div>`)
	timeOfGameRe = regexp.MustCompile(`(?s)Time of Game:.*?</div>`)
	htmlTagRe    = regexp.MustCompile(`<.*?>`)
)

// ExtractMetadata pulls the free-text fields (officials, attendance, time
// of game) from the raw markup. The three fields are independent: a label
// missing from the page nulls that field only.
func ExtractMetadata(html string) GameMetadata {
	var md GameMetadata

	if m := officialsRe.FindString(html); m != "" {
		var names []string
		for _, a := range anchorTextRe.FindAllStringSubmatch(m, -1) {
			names = append(names, a[1])
		}
		officials := strings.Join(names, ", ")
		md.Officials = &officials
	}

	if m := attendanceRe.FindString(html); m != "" {
		clean := stripTags(m)
		parts := strings.Split(clean, ":")
		attendance := strings.TrimSpace(parts[len(parts)-1])
		md.Attendance = &attendance
	}

	if m := timeOfGameRe.FindString(html); m != "" {
		clean := stripTags(m)
		if _, after, found := strings.Cut(clean, ": "); found {
			clean = after
		}
		timeOfGame := strings.TrimSpace(clean)
		md.TimeOfGame = &timeOfGame
	}

	return md
}

func stripTags(fragment string) string {
	clean := htmlTagRe.ReplaceAllString(fragment, "")
	return strings.ReplaceAll(clean, "&nbsp;", " ")
}

// ExtractInactivePlayers walks the labeled "Inactive" section: each team
// grouping is a span holding the abbreviation, followed by sibling player
// links until a non-link element ends the group. A page without the section
// yields an empty list.
func ExtractInactivePlayers(html string) ([]InactivePlayerRecord, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	var section *goquery.Selection
	doc.Find("strong").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if strings.Contains(strings.TrimSpace(s.Text()), "Inactive:") {
			section = s.Parent()
			return false
		}
		return true
	})
	if section == nil {
		return nil, nil
	}

	var records []InactivePlayerRecord
	section.Find("span").Each(func(i int, span *goquery.Selection) {
		team := strings.TrimSpace(span.Find("strong").First().Text())
		if team == "" {
			return
		}

		for sibling := span.Next(); sibling.Length() > 0; sibling = sibling.Next() {
			if !sibling.Is("a") {
				break
			}
			player := strings.TrimSpace(sibling.Text())
			if player == "" {
				continue
			}
			records = append(records, InactivePlayerRecord{
				Player: player,
				Team:   team,
				Reason: InactiveReason,
			})
		}
	})

	return records, nil
}
