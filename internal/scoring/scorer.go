// Package scoring computes the weighted match score between one resume's
// extracted profile and one job description's requirements. Scoring is a pure
// function of its inputs: any well-typed pair, including fully empty ones,
// yields a valid breakdown.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/types"
)

// Scorer scores resumes against a job requirement using configured weights
// and experience tolerance. Safe for concurrent use.
type Scorer struct {
	weights   config.Weights
	tolerance int
}

// NewScorer builds a scorer from configuration. A nil config falls back to
// the documented defaults.
func NewScorer(cfg *config.Config) *Scorer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Scorer{
		weights:   cfg.Weights,
		tolerance: cfg.ExperienceTolerance,
	}
}

// Score computes the four component scores and the weighted total for one
// (resume, job) pair. Components and total are reported as percentages
// rounded to two decimals.
func (s *Scorer) Score(profile types.ResumeProfile, req types.JobRequirement) types.ScoreBreakdown {
	requiredScore := skillMatch(profile.Skills, req.RequiredSkills)
	preferredScore := skillMatch(profile.Skills, req.PreferredSkills)
	experienceScore := s.experienceMatch(profile.ExperienceYears, req.MinExperienceYears)
	keywordScore := keywordMatch(profile.Keywords, req.Keywords)

	total := requiredScore*s.weights.RequiredSkills +
		preferredScore*s.weights.PreferredSkills +
		experienceScore*s.weights.Experience +
		keywordScore*s.weights.KeywordDensity

	return types.ScoreBreakdown{
		TotalScore:           asPercent(total),
		RequiredSkillsScore:  asPercent(requiredScore),
		PreferredSkillsScore: asPercent(preferredScore),
		ExperienceScore:      asPercent(experienceScore),
		KeywordScore:         asPercent(keywordScore),
		MatchedRequired:      profile.Skills.Intersect(req.RequiredSkills),
		MatchedPreferred:     profile.Skills.Intersect(req.PreferredSkills),
		MissingRequired:      req.RequiredSkills.Subtract(profile.Skills),
		ResumeExperience:     profile.ExperienceYears,
		RequiredExperience:   req.MinExperienceYears,
	}
}

// skillMatch returns |have ∩ need| / |need|. An empty requirement set scores
// 1.0: the absence of a requirement cannot penalize.
func skillMatch(have, need types.StringSet) float64 {
	if len(need) == 0 {
		return 1.0
	}
	return float64(len(have.Intersect(need))) / float64(len(need))
}

// experienceMatch is a two-regime piecewise function. Meeting the requirement
// scores 1.0. Within the tolerance window the score decays linearly but never
// below 0.7. Past the window it drops to a proportional score capped at 0.7;
// the discontinuity at the boundary is intentional.
func (s *Scorer) experienceMatch(have, need int) float64 {
	if need == 0 {
		return 1.0
	}
	if have >= need {
		return 1.0
	}
	if have >= need-s.tolerance {
		gap := float64(need - have)
		score := 1.0 - gap/float64(s.tolerance+1)*0.3
		return math.Max(0.7, score)
	}
	ratio := float64(have) / float64(need)
	return math.Max(0.0, ratio*0.7)
}

// keywordMatch combines breadth (distinct overlap with the JD's keyword set)
// with a density bonus for repeated mentions, capped at 1.0 combined. The
// bonus divides the count of matching occurrences by the total number of
// resume keyword occurrences, non-matching duplicates included, so the bonus
// is sensitive to overall keyword verbosity.
func keywordMatch(resumeKeywords []string, jdKeywords types.StringSet) float64 {
	if len(jdKeywords) == 0 {
		return 1.0
	}

	distinct := types.NewStringSet()
	matchingOccurrences := 0
	for _, kw := range resumeKeywords {
		lower := strings.ToLower(kw)
		distinct.Add(lower)
		if jdKeywords.Has(lower) {
			matchingOccurrences++
		}
	}

	matchRatio := float64(len(distinct.Intersect(jdKeywords))) / float64(len(jdKeywords))

	bonus := 0.0
	if len(resumeKeywords) > 0 {
		bonus = math.Min(0.2, float64(matchingOccurrences)/float64(len(resumeKeywords)))
	}

	return math.Min(1.0, matchRatio+bonus)
}

// asPercent converts a [0,1] score to a percentage rounded to two decimals.
func asPercent(score float64) float64 {
	return math.Round(score*100*100) / 100
}
