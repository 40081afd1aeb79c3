package types

// ScoreBreakdown holds the component and total scores for one (resume, job) pair.
// Component scores and the total are percentages rounded to two decimals.
type ScoreBreakdown struct {
	TotalScore           float64 `json:"total_score"`
	RequiredSkillsScore  float64 `json:"required_skills_score"`
	PreferredSkillsScore float64 `json:"preferred_skills_score"`
	ExperienceScore      float64 `json:"experience_score"`
	KeywordScore         float64 `json:"keyword_score"`

	MatchedRequired  []string `json:"matched_required_skills"`
	MatchedPreferred []string `json:"matched_preferred_skills"`
	MissingRequired  []string `json:"missing_required_skills"`

	ResumeExperience   int `json:"resume_experience"`
	RequiredExperience int `json:"required_experience"`
}

// ScoredResume pairs a resume profile with its score breakdown. This is the
// unit that flows through ranking, filtering, and export.
type ScoredResume struct {
	Profile ResumeProfile  `json:"profile"`
	Score   ScoreBreakdown `json:"score"`
}
