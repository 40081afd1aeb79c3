package jobdesc

import (
	"regexp"
	"strings"
)

// requiredHeadings are phrases that introduce a mandatory-skills section.
var requiredHeadings = []string{
	"required", "must have", "mandatory", "essential",
	"required skills", "requirements", "must possess",
	"key requirements", "core skills", "minimum qualifications",
	"basic qualifications", "what you need", "what we need",
	"you must have", "you should have", "necessary skills",
	"technical requirements", "hard requirements", "non-negotiable",
	"qualifications required", "skills required", "expected skills",
	"we are looking for", "we expect", "you will need",
}

// preferredHeadings are phrases that introduce a nice-to-have section.
var preferredHeadings = []string{
	"preferred", "nice to have", "desired", "plus",
	"preferred skills", "bonus", "advantage", "good to have",
	"additional skills", "preferred qualifications", "a plus",
	"ideal candidate", "would be nice", "beneficial",
	"extra credit", "not required but", "optional",
	"added advantage", "brownie points", "icing on the cake",
	"it would be great if", "even better if", "extra skills",
}

type sectionPattern struct {
	re *regexp.Regexp
}

// compileSectionPatterns builds, for each heading phrase, a matcher that
// captures everything after the heading up to the first heading of the
// opposite kind or end of text. Dot matches newline so sections span lines.
func compileSectionPatterns(headings, stopHeadings []string) []sectionPattern {
	escaped := make([]string, len(stopHeadings))
	for i, h := range stopHeadings {
		escaped[i] = regexp.QuoteMeta(h)
	}
	stopAlternation := strings.Join(escaped, "|")

	patterns := make([]sectionPattern, 0, len(headings))
	for _, heading := range headings {
		expr := `(?is)` + regexp.QuoteMeta(heading) + `[:\s]+(.*?)(?:` + stopAlternation + `|$)`
		patterns = append(patterns, sectionPattern{re: regexp.MustCompile(expr)})
	}
	return patterns
}

// extractSections concatenates the first capture of every heading pattern,
// merging disjoint headings of the same kind into one section text.
func extractSections(patterns []sectionPattern, textLower string) string {
	var sb strings.Builder
	for _, p := range patterns {
		if match := p.re.FindStringSubmatch(textLower); match != nil {
			sb.WriteString(match[1])
			sb.WriteString(" ")
		}
	}
	return strings.TrimSpace(sb.String())
}
