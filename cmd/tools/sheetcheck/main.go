package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/marcus/talent-radar/internal/api"
	"github.com/marcus/talent-radar/internal/candidates"
	"github.com/marcus/talent-radar/internal/sheets"
)

// Fetches the dashboard sheet through the authenticated gateway and prints
// the top candidates by matching score. Useful for verifying service-account
// access and header mapping without the dashboard in front.
func main() {
	top := flag.Int("top", 10, "number of candidates to print")
	flag.Parse()

	_ = godotenv.Load()

	cfg := api.ConfigFromEnv()
	client := sheets.NewClient()

	grid, err := client.FetchValues(context.Background(), cfg.DashboardSheetID, cfg.DashboardSheetRange)
	if err != nil {
		log.Fatal(err)
	}

	records := candidates.Normalize(grid)
	result := candidates.Query(records, candidates.MatchAll(),
		candidates.SortSpec{Field: "matching_score", Descending: true}, 1, *top)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Score", "Title", "Company", "Experience", "Qualification"})
	for _, cand := range result.Candidates {
		t.AppendRow(table.Row{
			cand.Name, cand.MatchingScore, cand.CurrentJobTitle,
			cand.CurrentCompany, cand.YearsExperience, cand.Qualification,
		})
	}
	t.Render()

	log.Printf("%d candidates in sheet, showing top %d", result.Total, len(result.Candidates))
}
