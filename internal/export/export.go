// Package export writes ranked screening results as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// csvHeader is the fixed column set of the CSV export.
var csvHeader = []string{
	"Rank", "File", "Name", "Email", "Phone", "Total Score (%)",
	"Required Skills (%)", "Preferred Skills (%)", "Experience (%)",
	"Keyword Match (%)", "Experience (Years)", "Matched Skills", "Missing Skills",
}

// maxListedSkills bounds the matched/missing skill columns so rows stay readable.
const maxListedSkills = 10

// WriteCSV writes the ranked results as CSV.
func WriteCSV(w io.Writer, result *pipeline.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, sr := range result.Ranked {
		row := []string{
			fmt.Sprintf("%d", i+1),
			sr.Profile.FileName,
			displayName(sr.Profile),
			sr.Profile.Email,
			sr.Profile.Phone,
			formatScore(sr.Score.TotalScore),
			formatScore(sr.Score.RequiredSkillsScore),
			formatScore(sr.Score.PreferredSkillsScore),
			formatScore(sr.Score.ExperienceScore),
			formatScore(sr.Score.KeywordScore),
			fmt.Sprintf("%d", sr.Score.ResumeExperience),
			joinLimited(sr.Score.MatchedRequired, maxListedSkills),
			joinLimited(sr.Score.MissingRequired, maxListedSkills),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// jsonEntry is one ranked candidate in the JSON export.
type jsonEntry struct {
	Rank            int                `json:"rank"`
	File            string             `json:"file,omitempty"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	TotalScore      float64            `json:"total_score"`
	Scores          map[string]float64 `json:"scores"`
	ExperienceYears int                `json:"experience_years"`
	MatchedRequired []string           `json:"matched_required_skills"`
	MatchedPref     []string           `json:"matched_preferred_skills"`
	MissingRequired []string           `json:"missing_required_skills"`
}

// WriteJSON writes the ranked results as indented JSON.
func WriteJSON(w io.Writer, result *pipeline.Result) error {
	entries := make([]jsonEntry, 0, len(result.Ranked))
	for i, sr := range result.Ranked {
		entries = append(entries, jsonEntry{
			Rank:       i + 1,
			File:       sr.Profile.FileName,
			Name:       displayName(sr.Profile),
			Email:      sr.Profile.Email,
			Phone:      sr.Profile.Phone,
			TotalScore: sr.Score.TotalScore,
			Scores: map[string]float64{
				"required_skills":  sr.Score.RequiredSkillsScore,
				"preferred_skills": sr.Score.PreferredSkillsScore,
				"experience":       sr.Score.ExperienceScore,
				"keyword_match":    sr.Score.KeywordScore,
			},
			ExperienceYears: sr.Score.ResumeExperience,
			MatchedRequired: sr.Score.MatchedRequired,
			MatchedPref:     sr.Score.MatchedPreferred,
			MissingRequired: sr.Score.MissingRequired,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

// ResultFileName builds a timestamped output filename from the JD path,
// e.g. results_backend_jd_20260829_153000.csv.
func ResultFileName(jdPath, format string, now time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(jdPath), filepath.Ext(jdPath))
	if stem == "" {
		stem = "screening"
	}
	return fmt.Sprintf("results_%s_%s.%s", stem, now.Format("20060102_150405"), format)
}

func displayName(profile types.ResumeProfile) string {
	if profile.Name == "" {
		return "Unknown"
	}
	return profile.Name
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

func joinLimited(values []string, limit int) string {
	if len(values) > limit {
		values = values[:limit]
	}
	return strings.Join(values, ", ")
}
