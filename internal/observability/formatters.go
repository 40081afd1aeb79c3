// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirement outputs a human-readable summary of the parsed job requirement.
func (p *Printer) PrintRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Min experience: %d years\n\n", req.MinExperienceYears))

	writeSkillList(&sb, "Required skills", req.RequiredSkills.Sorted())
	writeSkillList(&sb, "Preferred skills", req.PreferredSkills.Sorted())
	sb.WriteString(fmt.Sprintf("Keywords: %d", len(req.Keywords)))

	p.printBox("JOB REQUIREMENT", sb.String())
}

func writeSkillList(sb *strings.Builder, title string, skills []string) {
	if len(skills) == 0 {
		sb.WriteString(fmt.Sprintf("%s: none detected\n\n", title))
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d):\n", title, len(skills)))
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintTopCandidates outputs the top ranked candidates with their scores and
// matched/missing skills.
func (p *Printer) PrintTopCandidates(ranked []types.ScoredResume) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		sr := ranked[i]
		name := sr.Profile.Name
		if name == "" {
			name = sr.Profile.FileName
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%  Experience: %d years\n",
			sr.Score.TotalScore, sr.Score.ResumeExperience))
		if len(sr.Score.MatchedRequired) > 0 {
			skills := strings.Join(sr.Score.MatchedRequired, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", skills))
		}
		if len(sr.Score.MissingRequired) > 0 {
			missing := strings.Join(sr.Score.MissingRequired, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP MATCHING RESUMES", sb.String())
}

// PrintSummary outputs the final run counts.
func (p *Printer) PrintSummary(result *pipeline.Result) {
	if result == nil {
		return
	}
	content := fmt.Sprintf("Resumes considered: %d\nResumes scored:     %d\nCandidates returned: %d",
		result.Considered, result.Scored, result.Returned)
	p.printBox("SCREENING SUMMARY", content)
}
