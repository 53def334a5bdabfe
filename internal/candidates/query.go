package candidates

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/marcus/talent-radar/internal/models"
)

// TierDegreeOrAbove is the qualification selector that expands to tier
// membership instead of an exact match.
const TierDegreeOrAbove = "Degree or above"

var degreeOrAbove = map[string]bool{
	"Doctor": true,
	"Master": true,
	"Degree": true,
}

// Criteria filters the normalized record set. Both bounds of each range are
// inclusive. An empty Keyword always passes; an empty or "All" Qualification
// passes everything.
type Criteria struct {
	MinExperience float64
	MaxExperience float64
	MinScore      float64
	MaxScore      float64
	Qualification string
	Keyword       string
}

// MatchAll returns criteria with fully open ranges.
func MatchAll() Criteria {
	return Criteria{
		MaxExperience: math.MaxFloat64,
		MaxScore:      math.MaxFloat64,
	}
}

// Filter returns the records passing all criteria, preserving order.
func Filter(records []models.Candidate, cr Criteria) []models.Candidate {
	out := make([]models.Candidate, 0, len(records))
	for _, c := range records {
		if matches(c, cr) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c models.Candidate, cr Criteria) bool {
	exp := numeric(c.YearsExperience)
	if exp < cr.MinExperience || exp > cr.MaxExperience {
		return false
	}
	if c.MatchingScore < cr.MinScore || c.MatchingScore > cr.MaxScore {
		return false
	}

	switch cr.Qualification {
	case "", "All":
	case TierDegreeOrAbove:
		if !degreeOrAbove[c.Qualification] {
			return false
		}
	default:
		if c.Qualification != cr.Qualification {
			return false
		}
	}

	if cr.Keyword != "" {
		haystack := strings.ToLower(strings.Join([]string{
			c.Name, c.CurrentJobTitle, c.CurrentCompany, c.Industry, c.KeySkills, c.LinkedInSnippet,
		}, " "))
		// Every whitespace-separated token must match (AND semantics).
		for _, token := range strings.Fields(strings.ToLower(cr.Keyword)) {
			if !strings.Contains(haystack, token) {
				return false
			}
		}
	}

	return true
}

// numeric mirrors the sheet's loose typing: unparseable values filter and
// sort as zero.
func numeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// SortSpec names a candidate field (by its JSON name) and a direction.
type SortSpec struct {
	Field      string
	Descending bool
}

// Sort orders records in place: numeric comparison for score, experience and
// age, case-insensitive string comparison otherwise. Ties always break by
// ascending case-insensitive name, regardless of direction.
func Sort(records []models.Candidate, spec SortSpec) {
	sort.SliceStable(records, func(i, j int) bool {
		cmp := compareField(records[i], records[j], spec.Field)
		if spec.Descending {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
	})
}

func compareField(a, b models.Candidate, field string) int {
	switch field {
	case "matching_score", "years_experience", "age":
		av, bv := numericField(a, field), numericField(b, field)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	default:
		return strings.Compare(
			strings.ToLower(stringField(a, field)),
			strings.ToLower(stringField(b, field)),
		)
	}
}

func numericField(c models.Candidate, field string) float64 {
	switch field {
	case "matching_score":
		return c.MatchingScore
	case "years_experience":
		return numeric(c.YearsExperience)
	case "age":
		return numeric(c.Age)
	}
	return 0
}

func stringField(c models.Candidate, field string) string {
	switch field {
	case "current_job_title":
		return c.CurrentJobTitle
	case "current_company":
		return c.CurrentCompany
	case "industry":
		return c.Industry
	case "qualification":
		return c.Qualification
	default:
		return c.Name
	}
}

// DefaultPageSize matches the dashboard table's fixed page size.
const DefaultPageSize = 10

// Page is one page of query results.
type Page struct {
	Candidates []models.Candidate `json:"candidates"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageCount  int                `json:"page_count"`
}

// Paginate slices out one page, clamping the requested page into
// [1, pageCount]. An empty record set reports page 1 of 0 pages.
func Paginate(records []models.Candidate, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(records)
	pageCount := (total + pageSize - 1) / pageSize
	if page < 1 || pageCount == 0 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]models.Candidate, end-start)
	copy(out, records[start:end])
	return Page{Candidates: out, Total: total, Page: page, PageCount: pageCount}
}

// Query runs the full filter -> sort -> paginate pipeline. The pipeline is
// recomputed wholesale on every call; records are never mutated in place.
func Query(records []models.Candidate, cr Criteria, spec SortSpec, page, pageSize int) Page {
	filtered := Filter(records, cr)
	Sort(filtered, spec)
	return Paginate(filtered, page, pageSize)
}
