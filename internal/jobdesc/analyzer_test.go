package jobdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_RequiredPreferredSplit(t *testing.T) {
	text := "Required: Java, Spring, MySQL. Preferred: Docker, Kubernetes. Minimum 5 years of experience."

	req := NewAnalyzer().Parse(text)

	assert.ElementsMatch(t, []string{"java", "spring", "mysql"}, req.RequiredSkills.Sorted())
	assert.ElementsMatch(t, []string{"docker", "kubernetes"}, req.PreferredSkills.Sorted())
	assert.Equal(t, 5, req.MinExperienceYears)
}

func TestParse_MultilineSections(t *testing.T) {
	text := `Senior Backend Engineer

Must have:
- Kubernetes and Docker in production
- PostgreSQL

Nice to have:
- Terraform
`

	req := NewAnalyzer().Parse(text)

	assert.True(t, req.RequiredSkills.Has("kubernetes"))
	assert.True(t, req.RequiredSkills.Has("docker"))
	assert.True(t, req.RequiredSkills.Has("postgresql"))
	assert.True(t, req.PreferredSkills.Has("terraform"))
	assert.False(t, req.RequiredSkills.Has("terraform"), "required section stops at the preferred heading")
}

func TestParse_NoHeadingsFallsBackToAllRequired(t *testing.T) {
	text := "Our stack is Java and Docker on AWS."

	req := NewAnalyzer().Parse(text)

	assert.True(t, req.RequiredSkills.Has("java"))
	assert.True(t, req.RequiredSkills.Has("docker"))
	assert.True(t, req.RequiredSkills.Has("aws"))
	assert.Empty(t, req.PreferredSkills)
}

func TestParse_EmptyText(t *testing.T) {
	req := NewAnalyzer().Parse("")

	assert.Empty(t, req.RequiredSkills)
	assert.Empty(t, req.PreferredSkills)
	assert.Zero(t, req.MinExperienceYears)
	assert.Empty(t, req.Keywords)
}

func TestParse_NormalizesVariantsToTaxonomyNames(t *testing.T) {
	text := "Required: Spring Boot, Postgres, K8s, Node.js, Golang."

	req := NewAnalyzer().Parse(text)

	for _, want := range []string{"spring", "postgresql", "kubernetes", "nodejs", "go"} {
		assert.True(t, req.RequiredSkills.Has(want), "should contain %q", want)
	}
	assert.False(t, req.RequiredSkills.Has("spring boot"))
	assert.False(t, req.RequiredSkills.Has("k8s"))
}

func TestParse_KeywordsKeepOriginalCase(t *testing.T) {
	text := "We use Spring Boot and Java 11 heavily."

	req := NewAnalyzer().Parse(text)

	assert.True(t, req.Keywords.Has("spring boot"), "capitalized phrases are captured")
	assert.True(t, req.Keywords.Has("java 11"), "versioned tokens are captured")
	assert.False(t, req.Keywords.Has("and"), "stop words excluded")
}

func TestExtractMinExperience_TakesMinimum(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single figure", "minimum 5 years of experience", 5},
		{"range takes lower bound", "5 - 8 years of experience", 5},
		{"to-range takes lower bound", "3 to 5 years of experience", 3},
		{"several figures take smallest", "8 years of experience required, at least 2 years with Go", 2},
		{"plus suffix", "4+ years of experience", 4},
		{"no requirement", "experienced engineers welcome", 0},
		{"implausible ignored", "70 years of experience", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMinExperience(tt.text))
		})
	}
}

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Spring  Boot", "spring"},
		{"SQL Server", "sqlserver"},
		{"Ruby on Rails", "ruby"},
		{"RESTful", "rest"},
		{"CI/CD", "cicd"},
		{"HTML5", "html"},
		{"EC2", "aws"},
		{"Python", "python"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeSkill(tt.in), "normalizeSkill(%q)", tt.in)
	}
}

func TestExtractSkills_DenseAlternations(t *testing.T) {
	skills := extractSkills("kafka, elasticsearch, terraform, graphql and oauth")

	for _, want := range []string{"kafka", "elasticsearch", "terraform", "graphql", "oauth"} {
		assert.True(t, skills.Has(want), "should extract %q", want)
	}
}
