package types

// JobRequirement represents the requirements parsed out of a job description.
// When the analyzer finds neither a required nor a preferred section, every
// extracted skill lands in RequiredSkills and PreferredSkills stays empty.
type JobRequirement struct {
	RequiredSkills     StringSet `json:"required_skills"`
	PreferredSkills    StringSet `json:"preferred_skills"`
	MinExperienceYears int       `json:"min_experience_years"`
	Keywords           StringSet `json:"keywords"`
}
