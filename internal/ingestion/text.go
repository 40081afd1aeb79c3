// Package ingestion turns documents into raw text for the screening core:
// file extraction (PDF, DOCX, TXT, HTML), JSONL batch input, directory scans,
// and job-description URL fetching. Per-document failures are errors for the
// caller to log and skip; they never abort a batch.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t\r\f\v]+`)
	multiBlankLines = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text: unified line endings, collapsed runs of
// spaces, at most two consecutive blank lines. Line structure is preserved
// because the extractors are line-sensitive (name detection reads the first
// five lines).
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, " ", " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimRight(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
