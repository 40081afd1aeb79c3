package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// LoadDirectory extracts every supported document in dir, skipping any path in
// exclude (typically the job-description file in single-folder mode). Per-file
// failures are collected, not fatal.
func LoadDirectory(dir string, exclude ...string) ([]types.ResumeDocument, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read directory %s: %w", dir, err)}
	}

	excluded := make(map[string]bool, len(exclude))
	for _, path := range exclude {
		excluded[filepath.Clean(path)] = true
	}

	docs := make([]types.ResumeDocument, 0, len(entries))
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if excluded[filepath.Clean(path)] || !IsSupported(entry.Name()) {
			continue
		}
		doc, err := ExtractFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		docs = append(docs, doc)
	}

	// ReadDir order is lexical already, but be explicit: ranking ties break on
	// input order, so loading must be deterministic.
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].FileName < docs[j].FileName })
	return docs, errs
}

// jdNameKeywords mark a filename as likely being the job description.
var jdNameKeywords = []string{"job", "jd", "description", "opening", "position", "role", "vacancy"}

// resumeNameKeywords mark a filename as likely being a resume.
var resumeNameKeywords = []string{"resume", "cv", "candidate"}

// FindJobDescription locates the job-description file in a single-folder
// batch: first by JD-ish filename keywords, then any supported file that does
// not look like a resume. Returns empty when nothing qualifies.
func FindJobDescription(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		stem := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		for _, keyword := range jdNameKeywords {
			if strings.Contains(stem, keyword) {
				return filepath.Join(dir, entry.Name())
			}
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		stem := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		looksLikeResume := false
		for _, keyword := range resumeNameKeywords {
			if strings.Contains(stem, keyword) {
				looksLikeResume = true
				break
			}
		}
		if !looksLikeResume {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}
