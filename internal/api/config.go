package api

import "os"

// Config holds the deployment constants of the service: the two spreadsheets
// and the workflow webhook. The sheet identifiers default to the production
// deployment and are overridable per environment.
type Config struct {
	DashboardSheetID    string
	DashboardSheetRange string
	LoginSheetID        string
	LoginSheetRange     string
	WorkflowWebhookURL  string
}

func ConfigFromEnv() Config {
	cfg := Config{
		DashboardSheetID:    "1nK6qns3GmM8ESHq-57FIbbCi8B59btU0j_iT0cGRFjs",
		DashboardSheetRange: "DashboardData",
		LoginSheetID:        "1Mmtpb52khJDiWMOBZe556R_1EGq8x0LYXFP12BBcZYk",
		LoginSheetRange:     "Sheet1",
		WorkflowWebhookURL:  os.Getenv("WORKFLOW_WEBHOOK_URL"),
	}
	if v := os.Getenv("DASHBOARD_SHEET_ID"); v != "" {
		cfg.DashboardSheetID = v
	}
	if v := os.Getenv("DASHBOARD_SHEET_RANGE"); v != "" {
		cfg.DashboardSheetRange = v
	}
	if v := os.Getenv("LOGIN_SHEET_ID"); v != "" {
		cfg.LoginSheetID = v
	}
	if v := os.Getenv("LOGIN_SHEET_RANGE"); v != "" {
		cfg.LoginSheetRange = v
	}
	return cfg
}
