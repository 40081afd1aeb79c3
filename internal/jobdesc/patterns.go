package jobdesc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// skillPatterns is the JD-side vocabulary. It is intentionally denser than the
// resume taxonomy: job descriptions are short structured documents and miss
// fewer mentions with a hand-tuned alternation per technology family.
var skillPatterns = []*regexp.Regexp{
	// Programming languages
	regexp.MustCompile(`(?i)\b(java|python|javascript|typescript|c\+\+|c#|c|ruby|php|go|golang|rust|swift|kotlin|scala|perl|r|matlab|vba|bash|shell|powershell)\b`),
	// Java ecosystem
	regexp.MustCompile(`(?i)\b(spring|spring\s*boot|spring\s*mvc|spring\s*cloud|hibernate|jpa|jdbc|j2ee|jee|java\s*ee|servlets|jsp|jsf|struts|maven|gradle|tomcat|jboss|wildfly|weblogic|websphere)\b`),
	// Python ecosystem
	regexp.MustCompile(`(?i)\b(django|flask|fastapi|pandas|numpy|scipy|tensorflow|pytorch|keras|scikit-learn|sklearn|celery|asyncio)\b`),
	// JavaScript / frontend
	regexp.MustCompile(`(?i)\b(react|react\.?js|angular|angular\.?js|vue|vue\.?js|next\.?js|nuxt|svelte|ember|backbone|jquery|redux|mobx|webpack|babel|vite|npm|yarn|pnpm)\b`),
	// Backend frameworks
	regexp.MustCompile(`(?i)\b(node\.?js|express\.?js|express|nestjs|nest\.?js|asp\.net|\.net|\.net\s*core|rails|ruby\s*on\s*rails|laravel|symfony|codeigniter|gin|echo|fiber)\b`),
	// Databases
	regexp.MustCompile(`(?i)\b(mysql|postgresql|postgres|mongodb|mongo|oracle|sql\s*server|mssql|sqlite|redis|cassandra|dynamodb|couchdb|mariadb|neo4j|elasticsearch|elastic)\b`),
	regexp.MustCompile(`(?i)\b(sql|nosql|plsql|pl/sql|t-sql|rdbms|database)\b`),
	// Cloud platforms
	regexp.MustCompile(`(?i)\b(aws|amazon\s*web\s*services|azure|microsoft\s*azure|gcp|google\s*cloud|cloud|heroku|digitalocean|linode|vercel|netlify)\b`),
	// AWS services
	regexp.MustCompile(`(?i)\b(ec2|s3|lambda|rds|dynamodb|sqs|sns|cloudfront|cloudwatch|ecs|eks|fargate|api\s*gateway|cognito|iam)\b`),
	// DevOps & CI/CD
	regexp.MustCompile(`(?i)\b(docker|kubernetes|k8s|jenkins|git|github|gitlab|bitbucket|ci/cd|cicd|terraform|ansible|puppet|chef|vagrant|helm|argocd)\b`),
	// Web technologies
	regexp.MustCompile(`(?i)\b(html5?|css3?|sass|scss|less|tailwind|bootstrap|xml|json|yaml|rest|restful|soap|graphql|api|apis|microservices|micro-services)\b`),
	// Message queues & streaming
	regexp.MustCompile(`(?i)\b(kafka|rabbitmq|activemq|sqs|redis|celery|zeromq|pulsar)\b`),
	// Testing tools
	regexp.MustCompile(`(?i)\b(junit|testng|mockito|jest|mocha|chai|cypress|selenium|pytest|unittest|rspec|jasmine|karma|protractor)\b`),
	// Project management & collaboration
	regexp.MustCompile(`(?i)\b(jira|confluence|trello|asana|slack|teams|notion|monday)\b`),
	// Methodologies
	regexp.MustCompile(`(?i)\b(agile|scrum|kanban|waterfall|tdd|bdd|ddd|lean|xp|extreme\s*programming|devops|devsecops)\b`),
	// Data & analytics
	regexp.MustCompile(`(?i)\b(hadoop|spark|hive|pig|airflow|etl|data\s*warehouse|snowflake|redshift|bigquery|tableau|power\s*bi|looker)\b`),
	// Mobile development
	regexp.MustCompile(`(?i)\b(android|ios|react\s*native|flutter|xamarin|ionic|swift|objective-c|kotlin)\b`),
	// Security
	regexp.MustCompile(`(?i)\b(oauth|jwt|ssl|tls|https|encryption|security|owasp|penetration|vulnerability)\b`),
	// Monitoring & logging
	regexp.MustCompile(`(?i)\b(prometheus|grafana|elk|splunk|datadog|newrelic|dynatrace|logstash|kibana)\b`),
	// Version control
	regexp.MustCompile(`(?i)\b(git|svn|subversion|mercurial|github|gitlab|bitbucket)\b`),
	// Architecture patterns
	regexp.MustCompile(`(?i)\b(mvc|mvvm|mvp|clean\s*architecture|hexagonal|cqrs|event\s*sourcing|saga|domain\s*driven)\b`),
}

// extractSkills runs every JD skill pattern over the text and returns the
// normalized set of matches.
func extractSkills(text string) types.StringSet {
	skills := types.NewStringSet()
	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			skill := strings.TrimSpace(match[1])
			if skill != "" {
				skills.Add(normalizeSkill(skill))
			}
		}
	}
	return skills
}

// jdExperiencePatterns recognize JD phrasings of an experience requirement.
// Group 1 is the year count; range phrasings capture the lower bound.
var jdExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?).*?(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp).*?(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`minimum\s+(\d+)\s+(?:years?|yrs?)`),
	regexp.MustCompile(`at\s+least\s+(\d+)\s+(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\s*-\s*\d+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\s*to\s*\d+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`over\s+(\d+)\s+(?:years?|yrs?)`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s+(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`around\s+(\d+)\s+(?:years?|yrs?)`),
}

// extractMinExperience returns the minimum of all matched year figures: the
// most restrictive reading of the requirement. Zero means no requirement.
func extractMinExperience(textLower string) int {
	minYears := 0
	for _, pattern := range jdExperiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			year, err := strconv.Atoi(match[1])
			if err != nil || year <= 0 || year >= 50 {
				continue
			}
			if minYears == 0 || year < minYears {
				minYears = year
			}
		}
	}
	return minYears
}

var (
	capitalizedPhrase = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`)
	versionedToken    = regexp.MustCompile(`(?i)\b([a-z]+\s*\d+(?:\.\d+)?)\b`)

	keywordStopList = map[string]bool{
		"the": true, "and": true, "for": true,
		"with": true, "this": true, "that": true,
	}
)

// extractKeywords captures capitalized technology phrases ("Spring Boot") and
// version-tagged tokens ("Java 11") as a looser secondary signal. Only the
// keyword-density score consumes these.
func extractKeywords(text string) types.StringSet {
	keywords := types.NewStringSet()

	for _, match := range capitalizedPhrase.FindAllStringSubmatch(text, -1) {
		keyword := strings.ToLower(match[1])
		if !keywordStopList[keyword] {
			keywords.Add(keyword)
		}
	}
	for _, match := range versionedToken.FindAllStringSubmatch(text, -1) {
		keywords.Add(strings.ToLower(match[1]))
	}
	return keywords
}
