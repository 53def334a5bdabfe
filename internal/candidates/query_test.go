package candidates

import (
	"fmt"
	"testing"

	"github.com/marcus/talent-radar/internal/models"
)

func TestFilterScoreRange(t *testing.T) {
	records := []models.Candidate{
		{Name: "low", MatchingScore: 10},
		{Name: "mid", MatchingScore: 55},
		{Name: "high", MatchingScore: 90},
	}

	cr := MatchAll()
	cr.MinScore, cr.MaxScore = 50, 100

	got := Filter(records, cr)
	if len(got) != 2 || got[0].Name != "mid" || got[1].Name != "high" {
		t.Errorf("expected [mid high], got %v", got)
	}
}

func TestFilterExperienceRange(t *testing.T) {
	records := []models.Candidate{
		{Name: "junior", YearsExperience: "2"},
		{Name: "senior", YearsExperience: "12"},
		{Name: "unknown", YearsExperience: "NA"}, // parses as 0
	}

	cr := MatchAll()
	cr.MinExperience, cr.MaxExperience = 1, 10

	got := Filter(records, cr)
	if len(got) != 1 || got[0].Name != "junior" {
		t.Errorf("expected [junior], got %v", got)
	}
}

func TestFilterQualificationTier(t *testing.T) {
	records := []models.Candidate{
		{Name: "a", Qualification: "Doctor"},
		{Name: "b", Qualification: "Master"},
		{Name: "c", Qualification: "Degree"},
		{Name: "d", Qualification: "Below Degree"},
	}

	cr := MatchAll()
	cr.Qualification = TierDegreeOrAbove

	got := Filter(records, cr)
	if len(got) != 3 {
		t.Fatalf("expected 3 records in tier, got %d", len(got))
	}
	for _, c := range got {
		if c.Qualification == "Below Degree" {
			t.Error("tier selector must exclude Below Degree")
		}
	}
}

func TestFilterKeywordANDSemantics(t *testing.T) {
	records := []models.Candidate{
		{Name: "Alice", CurrentJobTitle: "Go Engineer", KeySkills: "Kubernetes"},
		{Name: "Bob", CurrentJobTitle: "Go Engineer", KeySkills: "Java"},
	}

	tests := []struct {
		keyword string
		want    []string
	}{
		{"", []string{"Alice", "Bob"}},
		{"go", []string{"Alice", "Bob"}},
		{"go kubernetes", []string{"Alice"}},
		{"GO KUBERNETES", []string{"Alice"}},
		{"go python", nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("keyword %q", tt.keyword), func(t *testing.T) {
			cr := MatchAll()
			cr.Keyword = tt.keyword

			got := Filter(records, cr)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d records, got %d", len(tt.want), len(got))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("record %d = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestSortTieBreakByName(t *testing.T) {
	records := []models.Candidate{
		{Name: "zita", MatchingScore: 80},
		{Name: "Adam", MatchingScore: 80},
		{Name: "mara", MatchingScore: 95},
	}

	Sort(records, SortSpec{Field: "matching_score", Descending: true})

	want := []string{"mara", "Adam", "zita"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, records[i].Name, name)
		}
	}
}

func TestSortNumericExperience(t *testing.T) {
	records := []models.Candidate{
		{Name: "a", YearsExperience: "10"},
		{Name: "b", YearsExperience: "9"},
		{Name: "c", YearsExperience: "NA"}, // sorts as 0
	}

	Sort(records, SortSpec{Field: "years_experience", Descending: false})

	want := []string{"c", "b", "a"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, records[i].Name, name)
		}
	}
}

func TestSortStringCaseInsensitive(t *testing.T) {
	records := []models.Candidate{
		{Name: "b", CurrentCompany: "zeta"},
		{Name: "a", CurrentCompany: "Acme"},
	}

	Sort(records, SortSpec{Field: "current_company", Descending: false})

	if records[0].CurrentCompany != "Acme" {
		t.Errorf("expected Acme first, got %q", records[0].CurrentCompany)
	}
}

func TestPaginate(t *testing.T) {
	records := make([]models.Candidate, 23)
	for i := range records {
		records[i].Name = fmt.Sprintf("candidate-%02d", i+1)
	}

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantCount int
		wantFirst string
	}{
		{"first page", 1, 1, 10, "candidate-01"},
		{"last page", 3, 3, 3, "candidate-21"},
		{"page zero clamps low", 0, 1, 10, "candidate-01"},
		{"page beyond range clamps high", 4, 3, 3, "candidate-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(records, tt.page, 10)
			if p.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.PageCount != 3 {
				t.Errorf("page count = %d, want 3", p.PageCount)
			}
			if p.Total != 23 {
				t.Errorf("total = %d, want 23", p.Total)
			}
			if len(p.Candidates) != tt.wantCount {
				t.Fatalf("len = %d, want %d", len(p.Candidates), tt.wantCount)
			}
			if p.Candidates[0].Name != tt.wantFirst {
				t.Errorf("first = %q, want %q", p.Candidates[0].Name, tt.wantFirst)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate(nil, 5, 10)
	if p.Page != 1 || p.PageCount != 0 || p.Total != 0 || len(p.Candidates) != 0 {
		t.Errorf("unexpected empty page: %+v", p)
	}
}

func TestQueryPipeline(t *testing.T) {
	records := []models.Candidate{
		{Name: "a", MatchingScore: 40, Qualification: "Degree"},
		{Name: "b", MatchingScore: 90, Qualification: "Master"},
		{Name: "c", MatchingScore: 70, Qualification: "Doctor"},
		{Name: "d", MatchingScore: 95, Qualification: "Below Degree"},
	}

	cr := MatchAll()
	cr.MinScore = 50
	cr.Qualification = TierDegreeOrAbove

	p := Query(records, cr, SortSpec{Field: "matching_score", Descending: true}, 1, 10)
	if p.Total != 2 {
		t.Fatalf("total = %d, want 2", p.Total)
	}
	if p.Candidates[0].Name != "b" || p.Candidates[1].Name != "c" {
		t.Errorf("unexpected order: %v", p.Candidates)
	}
}
