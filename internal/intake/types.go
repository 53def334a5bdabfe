package intake

// Payload is the intake form submission forwarded to the workflow engine.
// Field names follow the wire contract the engine already consumes.
type Payload struct {
	JobTitle         string             `json:"jobTitle" validate:"required"`
	NumberOfProfiles int                `json:"numberOfProfiles" validate:"required,gt=0"`
	Batch            int                `json:"batch" validate:"required,gt=0"`
	ScoringScheme    []ScoringSchemeRow `json:"scoringScheme" validate:"required,min=1,dive"`
	JDDocument       Document           `json:"jdDocument"`
	ResumeFiles      []ResumeFile       `json:"resumeFiles" validate:"dive"`
	Timestamp        string             `json:"timestamp"`
}

// ScoringSchemeRow is one weighted scoring area. Weights across the scheme
// must total 100.
type ScoringSchemeRow struct {
	Area          string  `json:"area" validate:"required"`
	WeightPercent float64 `json:"weightPercent" validate:"gte=0,lte=100"`
}

// Document is the job-description attachment.
type Document struct {
	FileName      string `json:"fileName"`
	MimeType      string `json:"mimeType"`
	ContentFormat string `json:"contentFormat" validate:"omitempty,oneof=markdown_text base64_pdf base64_docx none"`
	Content       string `json:"content"`
}

// ResumeFile is one uploaded resume, base64-encoded. Parsing and scoring
// happen downstream in the workflow engine.
type ResumeFile struct {
	FileName      string `json:"fileName" validate:"required"`
	MimeType      string `json:"mimeType" validate:"required"`
	ContentFormat string `json:"contentFormat" validate:"required,oneof=base64_pdf base64_docx"`
	Content       string `json:"content" validate:"required"`
}
