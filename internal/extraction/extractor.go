// Package extraction pulls structured signals out of raw resume text: canonical
// skills, raw keyword occurrences, estimated years of experience, and contact
// details. Matching is lexical against an injected taxonomy; nothing here ever
// returns an error; absent signals degrade to empty values.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

// presentReferenceYear is the year substituted for "present"/"current" when
// summing employment date ranges.
const presentReferenceYear = 2026

// synonymPattern is one precompiled surface-form matcher for a canonical skill.
type synonymPattern struct {
	canonical string
	re        *regexp.Regexp
}

// Extractor extracts resume signals using a read-only taxonomy. Construct once
// and share freely; it is safe for concurrent use.
type Extractor struct {
	patterns      []synonymPattern
	referenceYear int
}

// NewExtractor compiles the taxonomy's surface forms into matchers.
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	e := &Extractor{referenceYear: presentReferenceYear}
	for _, category := range tax.Categories {
		for _, skill := range category.Skills {
			for _, synonym := range skill.Synonyms {
				e.patterns = append(e.patterns, synonymPattern{
					canonical: skill.Name,
					re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(synonym)) + `\b`),
				})
			}
		}
	}
	return e
}

// Skills returns the canonical skills mentioned in the text. The first synonym
// that matches adds the canonical name once; remaining synonyms for that skill
// are skipped.
func (e *Extractor) Skills(text string) types.StringSet {
	textLower := strings.ToLower(text)
	found := types.NewStringSet()
	for _, p := range e.patterns {
		if found.Has(p.canonical) {
			continue
		}
		if p.re.MatchString(textLower) {
			found.Add(p.canonical)
		}
	}
	return found
}

// Keywords returns every surface-form match in the text, duplicates preserved.
// A skill mentioned five times yields five entries; the scorer uses the
// frequency for its keyword-density bonus.
func (e *Extractor) Keywords(text string) []string {
	textLower := strings.ToLower(text)
	keywords := make([]string, 0)
	for _, p := range e.patterns {
		keywords = append(keywords, p.re.FindAllString(textLower, -1)...)
	}
	return keywords
}

// Profile runs the full extraction over one resume's text.
func (e *Extractor) Profile(doc types.ResumeDocument) types.ResumeProfile {
	contact := e.ContactInfo(doc.Text)
	return types.ResumeProfile{
		FileName:        doc.FileName,
		Name:            contact.Name,
		Email:           contact.Email,
		Phone:           contact.Phone,
		Skills:          e.Skills(doc.Text),
		Keywords:        e.Keywords(doc.Text),
		ExperienceYears: e.ExperienceYears(doc.Text),
	}
}
