package candidates

import (
	_ "embed"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcus/talent-radar/internal/models"
	"github.com/marcus/talent-radar/internal/sheets"
)

//go:embed config/aliases.yaml
var aliasesYAML []byte

type aliasTable struct {
	Fields []fieldAliases `yaml:"fields"`
}

type fieldAliases struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

var aliases = mustLoadAliases()

func mustLoadAliases() aliasTable {
	var t aliasTable
	if err := yaml.Unmarshal(aliasesYAML, &t); err != nil {
		panic("candidates: embedded aliases.yaml is invalid: " + err.Error())
	}
	return t
}

// missingValue stands in for any text field the sheet does not provide.
const missingValue = "NA"

// Normalize converts a raw grid into canonical candidate records. Output
// order matches input row order. A grid without a header row and at least
// one data row yields an empty slice. Total over any grid shape; never
// fails.
func Normalize(grid sheets.Grid) []models.Candidate {
	if len(grid) < 2 {
		return []models.Candidate{}
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	// Resolve each canonical field to a column index once; first alias wins.
	columns := make(map[string]int, len(aliases.Fields))
	for _, f := range aliases.Fields {
		columns[f.Name] = -1
		for _, alias := range f.Aliases {
			if idx := indexOf(headers, alias); idx >= 0 {
				columns[f.Name] = idx
				break
			}
		}
	}

	records := make([]models.Candidate, 0, len(grid)-1)
	for _, row := range grid[1:] {
		records = append(records, recordFromRow(row, columns))
	}
	return records
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func recordFromRow(row []string, columns map[string]int) models.Candidate {
	cell := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	text := func(field string) string {
		if v := cell(field); v != "" {
			return v
		}
		return missingValue
	}

	// Unparseable scores stay 0, matching the rest of the pipeline's
	// loose-typing contract.
	score, _ := strconv.ParseFloat(cell("matching_score"), 64)

	return models.Candidate{
		Name:            text("name"),
		Age:             text("age"),
		CurrentJobTitle: text("current_job_title"),
		CurrentCompany:  text("current_company"),
		Industry:        text("industry"),
		MatchingScore:   score,
		YearsExperience: text("years_experience"),
		Qualification:   text("qualification"),
		KeySkills:       text("key_skills"),
		GDriveLink:      text("gdrivelink"),
		LinkedInSnippet: text("linkedin_snippet"),
		MaritalStatus:   text("marital_status"),
		CertAndLicense:  text("cert_and_license"),
		Language:        text("language"),
		Loyalty:         text("loyalty"),
		ExpectedSalary:  text("expected_salary"),
		Phone:           text("phone"),
		Questions:       text("questions"),
		ScoreBreakdown:  text("score_breakdown"),
	}
}
