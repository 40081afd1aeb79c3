// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument represents raw resume text obtained from a file or JSONL record,
// before any signal extraction has happened.
type ResumeDocument struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path,omitempty"`
	Text     string `json:"text"`
	Source   string `json:"source"` // "file" or "jsonl"
}

// ResumeProfile represents the structured signals extracted from one resume.
// All fields are best-effort: a fully empty profile is valid input for scoring.
type ResumeProfile struct {
	FileName        string    `json:"file_name,omitempty"`
	Name            string    `json:"name,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Skills          StringSet `json:"skills"`
	Keywords        []string  `json:"keywords"` // raw surface-form matches, duplicates preserved for frequency
	ExperienceYears int       `json:"experience_years"`
}

// Contact holds the best-effort contact fields pulled from resume text.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}
