package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/ewint814/nba-game-tracker/internal/scrape/bref"
)

// Simple test utility to verify the basketball-reference scraper works
// against the live site. Pass a date as YYYY-MM-DD, defaults to yesterday.
func main() {
	log.Println("Testing basketball-reference scraper")
	log.Println("====================================")

	date := time.Now().AddDate(0, 0, -1)
	if len(os.Args) > 1 {
		parsed, err := time.Parse("2006-01-02", os.Args[1])
		if err != nil {
			log.Fatalf("Invalid date %q: %v", os.Args[1], err)
		}
		date = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := bref.NewClient("")

	log.Printf("\n1. Fetching schedule for %s...", date.Format("2006-01-02"))
	html, err := client.Fetch(ctx, client.ScheduleURL(date))
	if err != nil {
		log.Fatalf("Failed to fetch schedule: %v", err)
	}
	log.Printf("✓ Fetched %d bytes", len(html))

	games, err := bref.ParseSchedule(html, "")
	if err != nil {
		log.Fatalf("Failed to parse schedule: %v", err)
	}
	log.Printf("✓ Found %d games", len(games))
	for _, g := range games {
		log.Printf("  %s %d, %s %d", g.Winner, g.WinnerScore, g.Loser, g.LoserScore)
	}

	if len(games) == 0 {
		log.Println("No games to fetch a box score for, done")
		return
	}

	log.Printf("\n2. Fetching box score %s...", games[0].BoxScoreURL)
	boxHTML, err := client.Fetch(ctx, games[0].BoxScoreURL)
	if err != nil {
		log.Fatalf("Failed to fetch box score: %v", err)
	}

	players, totals, err := bref.ExtractBoxScore(boxHTML)
	if err != nil {
		log.Fatalf("Failed to extract box score: %v", err)
	}
	log.Printf("✓ Extracted %d player rows, %d totals rows", len(players), len(totals))

	lineScore, fourFactors, err := bref.ExtractLineScoreFourFactors(boxHTML)
	if err != nil {
		log.Fatalf("Failed to extract line score: %v", err)
	}
	log.Printf("✓ Line score rows: %d, four factors rows: %d", len(lineScore), len(fourFactors))
	for _, ls := range lineScore {
		log.Printf("  %s: %v (%s)", ls.Team, ls.Periods, ls.OvertimeInfo)
	}

	inactive, err := bref.ExtractInactivePlayers(boxHTML)
	if err != nil {
		log.Fatalf("Failed to extract inactive players: %v", err)
	}
	log.Printf("✓ Inactive players: %d", len(inactive))

	md := bref.ExtractMetadata(boxHTML)
	if md.Attendance != nil {
		log.Printf("✓ Attendance: %s", *md.Attendance)
	}
	if md.Officials != nil {
		log.Printf("✓ Officials: %s", *md.Officials)
	}
	if md.TimeOfGame != nil {
		log.Printf("✓ Time of game: %s", *md.TimeOfGame)
	}

	log.Printf("✓ Context: %s", bref.GameContext(boxHTML).Label())
	log.Println("\nDone")
}
