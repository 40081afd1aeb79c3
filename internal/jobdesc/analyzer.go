// Package jobdesc parses job-description text into a structured requirement:
// required vs preferred skills split on heading phrases, a minimum-experience
// figure, and a loose keyword set for density scoring. Like the resume side,
// parsing is heuristic and never fails; a JD that yields nothing produces an
// empty requirement.
package jobdesc

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Analyzer parses job descriptions. Construct once via NewAnalyzer; it
// precompiles all heading and skill patterns and is safe for concurrent use.
type Analyzer struct {
	requiredSections  []sectionPattern
	preferredSections []sectionPattern
}

// NewAnalyzer compiles the section-splitting patterns.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		requiredSections:  compileSectionPatterns(requiredHeadings, preferredHeadings),
		preferredSections: compileSectionPatterns(preferredHeadings, requiredHeadings),
	}
}

// Parse extracts a JobRequirement from raw JD text.
//
// When section splitting finds skills in neither the required nor the
// preferred section, the whole text is re-scanned and everything is treated
// as required: a JD without structural headings demands all it mentions.
func (a *Analyzer) Parse(text string) types.JobRequirement {
	textLower := strings.ToLower(text)

	requiredSection := extractSections(a.requiredSections, textLower)
	preferredSection := extractSections(a.preferredSections, textLower)

	requiredSkills := extractSkills(requiredSection)
	preferredSkills := extractSkills(preferredSection)

	if len(requiredSkills) == 0 && len(preferredSkills) == 0 {
		requiredSkills = extractSkills(textLower)
		preferredSkills = types.NewStringSet()
	}

	return types.JobRequirement{
		RequiredSkills:     requiredSkills,
		PreferredSkills:    preferredSkills,
		MinExperienceYears: extractMinExperience(textLower),
		Keywords:           extractKeywords(text),
	}
}
