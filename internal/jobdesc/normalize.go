package jobdesc

import "strings"

// skillNormalizations maps surface variants to canonical skill tags. The
// canonical spellings here must agree with the resume-side taxonomy's skill
// names, otherwise a JD requirement and a resume mention of the same
// technology never intersect and the match silently fails.
var skillNormalizations = map[string]string{
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"node":                "nodejs",
	"node.js":             "nodejs",
	"express.js":          "express",
	"expressjs":           "express",
	"next.js":             "nextjs",
	"angular.js":          "angular",
	"angularjs":           "angular",
	"nest.js":             "nestjs",
	"golang":              "go",
	"postgres":            "postgresql",
	"mongo":               "mongodb",
	"k8s":                 "kubernetes",
	"ci/cd":               "cicd",
	"amazon web services": "aws",
	"microsoft azure":     "azure",
	"google cloud":        "gcp",
	"pl/sql":              "plsql",
	"sql server":          "sqlserver",
	"mssql":               "sqlserver",
	"ms sql":              "sqlserver",
	"asp.net":             "aspnet",

	// Multiword ecosystem variants folded into their taxonomy canonical.
	"spring boot":    "spring",
	"spring mvc":     "spring",
	"spring cloud":   "spring",
	"j2ee":           "java",
	"jee":            "java",
	"java ee":        "java",
	"jpa":            "hibernate",
	"rails":          "ruby",
	"ruby on rails":  "ruby",
	"restful":        "rest",
	"microservice":   "microservices",
	"micro-services": "microservices",
	"html5":          "html",
	"css3":           "css",
	"sass":           "css",
	"scss":           "css",
	"ec2":            "aws",
	"s3":             "aws",
	"lambda":         "aws",
}

// normalizeSkill lowercases a matched skill, collapsing internal whitespace,
// and maps known variants to their canonical tag.
func normalizeSkill(skill string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(skill)), " ")
	if canonical, ok := skillNormalizations[normalized]; ok {
		return canonical
	}
	return normalized
}
