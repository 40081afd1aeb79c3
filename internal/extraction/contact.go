package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in priority order: dashed US, parenthesized US,
// bare 10-digit, international.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\b\d{10}\b`),
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
}

var (
	namePattern      = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\b`)
	phoneShaped      = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	nonDigit         = regexp.MustCompile(`\D`)
	genericHeadlines = map[string]bool{"resume": true, "curriculum vitae": true, "summary": true}
)

// ContactInfo extracts email, phone, and name best-effort. Any field the text
// does not yield comes back empty.
func (e *Extractor) ContactInfo(text string) types.Contact {
	return types.Contact{
		Email: extractEmail(text),
		Phone: extractPhone(text),
		Name:  extractName(text),
	}
}

// extractEmail prefers the first address that is not an obvious placeholder,
// falling back to the first match when every candidate looks like one.
func extractEmail(text string) string {
	matches := emailPattern.FindAllString(text, -1)
	for _, email := range matches {
		lower := strings.ToLower(email)
		if !strings.Contains(lower, "example") && !strings.Contains(lower, "sample") {
			return email
		}
	}
	if len(matches) > 0 {
		return matches[0]
	}
	return ""
}

// extractPhone returns the first pattern match carrying at least 10 digits,
// which filters out zip codes and other short numbers.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		phone := pattern.FindString(text)
		if phone == "" {
			continue
		}
		if len(nonDigit.ReplaceAllString(phone, "")) >= 10 {
			return phone
		}
	}
	return ""
}

// extractName looks for a capitalized 2-4 word run in the first five lines,
// skipping contact lines and generic headings.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		if strings.Contains(line, "@") || phoneShaped.MatchString(line) {
			continue
		}
		match := namePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		name := strings.TrimSpace(match[1])
		if !genericHeadlines[strings.ToLower(name)] {
			return name
		}
	}
	return ""
}
