package models

// Candidate is the canonical record shape the dashboard depends on,
// decoupled from the spreadsheet's actual column names. Every field is
// always populated: "NA" (or 0 for MatchingScore) stands in for anything
// the sheet does not provide.
type Candidate struct {
	Name            string  `json:"name"`
	Age             string  `json:"age"`
	CurrentJobTitle string  `json:"current_job_title"`
	CurrentCompany  string  `json:"current_company"`
	Industry        string  `json:"industry"`
	MatchingScore   float64 `json:"matching_score"`
	YearsExperience string  `json:"years_experience"`
	Qualification   string  `json:"qualification"`
	KeySkills       string  `json:"key_skills"`
	GDriveLink      string  `json:"gdrivelink"`
	LinkedInSnippet string  `json:"linkedin_snippet"`
	MaritalStatus   string  `json:"marital_status"`
	CertAndLicense  string  `json:"cert_and_license"`
	Language        string  `json:"language"`
	Loyalty         string  `json:"loyalty"`
	ExpectedSalary  string  `json:"expected_salary"`
	Phone           string  `json:"phone"`
	Questions       string  `json:"questions"`
	ScoreBreakdown  string  `json:"score_breakdown"`
}
