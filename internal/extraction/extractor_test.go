package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

const sampleResume = `John Doe
john.doe@email.com | 555-123-4567

Senior Software Engineer with 8 years of experience building scalable
backend systems in Java and Spring Boot.

EXPERIENCE

Senior Software Engineer, Acme Corp (2018 - 2022)
- Built microservices with Java, Spring Boot and PostgreSQL
- Deployed to AWS using Docker and Kubernetes

Software Engineer, Widget Inc (2015 - 2018)
- Developed REST APIs with Python and Django
- Maintained MySQL databases and Jenkins pipelines

SKILLS
Java, Python, Spring, Django, PostgreSQL, MySQL, AWS, Docker, Kubernetes, Git
`

func newTestExtractor() *Extractor {
	return NewExtractor(taxonomy.Default())
}

func TestSkills_SampleResume(t *testing.T) {
	skills := newTestExtractor().Skills(sampleResume)

	for _, want := range []string{"java", "python", "spring", "django",
		"postgresql", "mysql", "aws", "docker", "kubernetes", "git", "rest", "microservices"} {
		assert.True(t, skills.Has(want), "should extract %q", want)
	}
	assert.False(t, skills.Has("rust"))
}

func TestSkills_SynonymsMapToCanonical(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		text string
		want string
	}{
		{"Experienced with golang services", "go"},
		{"Managed k8s clusters", "kubernetes"},
		{"Tuned postgres queries", "postgresql"},
		{"Worked with Node.js backends", "nodejs"},
		{"Shipped dotnet applications", "csharp"},
	}

	for _, tt := range tests {
		skills := e.Skills(tt.text)
		assert.True(t, skills.Has(tt.want), "%q should map to %q", tt.text, tt.want)
	}
}

func TestSkills_WholeWordBoundary(t *testing.T) {
	skills := newTestExtractor().Skills("I enjoy going to javascript meetups")

	assert.False(t, skills.Has("go"), "\"going\" must not match go")
	assert.True(t, skills.Has("javascript"))
	assert.False(t, skills.Has("java"), "\"javascript\" must not match java")
}

func TestKeywords_PreservesFrequency(t *testing.T) {
	keywords := newTestExtractor().Keywords("Java and more Java, plus Docker")

	javaCount := 0
	for _, kw := range keywords {
		if kw == "java" {
			javaCount++
		}
	}
	assert.Equal(t, 2, javaCount)
	assert.Contains(t, keywords, "docker")
}

func TestExperienceYears_StatedClaim(t *testing.T) {
	e := newTestExtractor()

	assert.Equal(t, 8, e.ExperienceYears("8 years of experience in backend development"))
	assert.Equal(t, 10, e.ExperienceYears("Over 10 years building distributed systems"))
	assert.Equal(t, 12, e.ExperienceYears("more than 12 yrs in software"))
	assert.Equal(t, 6, e.ExperienceYears("experience spanning 6 years"))
}

func TestExperienceYears_DateRanges(t *testing.T) {
	e := newTestExtractor()
	e.referenceYear = 2026

	assert.Equal(t, 7, e.ExperienceYears("Acme Corp (2015 - 2022)"))
	assert.Equal(t, 9, e.ExperienceYears("Acme (2015 - 2022)\nWidget (2022 - 2024)"))
	assert.Equal(t, 6, e.ExperienceYears("Acme Corp, 2020 - present"))
	assert.Equal(t, 2, e.ExperienceYears("03/2019 - 06/2021 Backend Engineer"))
}

func TestExperienceYears_MaxAcrossStrategies(t *testing.T) {
	e := newTestExtractor()

	// Stated claim (8) beats date ranges (7: 2018-2022 plus 2015-2018)
	assert.Equal(t, 8, e.ExperienceYears(sampleResume))

	// Date ranges beat a smaller stated claim
	text := "3 years of experience\nAcme (2015 - 2022)"
	assert.Equal(t, 7, e.ExperienceYears(text))
}

func TestExperienceYears_Bounds(t *testing.T) {
	e := newTestExtractor()

	assert.Equal(t, 0, e.ExperienceYears("60 years of experience"), "implausible claims ignored")
	assert.Equal(t, 0, e.ExperienceYears("0 years of experience"))
	assert.Equal(t, 0, e.ExperienceYears("Acme Corp (1980 - 2022)"), "spans of 30+ years ignored")
	assert.Equal(t, 0, e.ExperienceYears("no numbers here"))
}

func TestContactInfo_SampleResume(t *testing.T) {
	contact := newTestExtractor().ContactInfo(sampleResume)

	assert.Equal(t, "John Doe", contact.Name)
	assert.Equal(t, "john.doe@email.com", contact.Email)
	assert.Equal(t, "555-123-4567", contact.Phone)
}

func TestExtractEmail_SkipsPlaceholders(t *testing.T) {
	text := "Contact: user@example.com or jane.real@corp.io"
	assert.Equal(t, "jane.real@corp.io", extractEmail(text))

	onlyPlaceholder := "Contact: user@example.com"
	assert.Equal(t, "user@example.com", extractEmail(onlyPlaceholder), "falls back to the only match")

	assert.Empty(t, extractEmail("no email here"))
}

func TestExtractPhone_Formats(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Call 555-123-4567 today", "555-123-4567"},
		{"Phone: (555) 123-4567", "(555) 123-4567"},
		{"Cell 5551234567", "5551234567"},
		{"Intl +1-555-123-4567", "+1-555-123-4567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPhone(tt.text))
	}

	assert.Empty(t, extractPhone("zip 12345, apt 678"), "short numbers are not phones")
}

func TestExtractName_SkipsHeadingsAndContactLines(t *testing.T) {
	text := "Curriculum Vitae\njohn@corp.io\n555-123-4567\nJane Smith\nEngineer"
	assert.Equal(t, "Jane Smith", extractName(text))

	deepName := "line1\nline2\nline3\nline4\nline5\nJane Smith"
	assert.Empty(t, extractName(deepName), "only the first five lines are scanned")
}

func TestProfile_ComposesAllSignals(t *testing.T) {
	doc := types.ResumeDocument{FileName: "john_doe.txt", Text: sampleResume}

	profile := newTestExtractor().Profile(doc)

	require.Equal(t, "john_doe.txt", profile.FileName)
	assert.Equal(t, "John Doe", profile.Name)
	assert.Equal(t, "john.doe@email.com", profile.Email)
	assert.Equal(t, 8, profile.ExperienceYears)
	assert.True(t, profile.Skills.Has("java"))
	assert.NotEmpty(t, profile.Keywords)
}
