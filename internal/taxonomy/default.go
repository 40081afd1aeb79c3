package taxonomy

// Default returns the built-in taxonomy used when no external file is supplied.
// Canonical names here are the tags the scorer matches against, so the job
// description analyzer's normalization table must agree with these spellings.
func Default() *Taxonomy {
	return &Taxonomy{Categories: []Category{
		{Name: "programming_languages", Skills: []Skill{
			{Name: "java", Synonyms: []string{"java", "j2ee", "jdk", "jre", "java 8", "java 11", "java 17"}},
			{Name: "python", Synonyms: []string{"python", "python3", "py"}},
			{Name: "javascript", Synonyms: []string{"javascript", "js", "ecmascript", "es6", "es2015"}},
			{Name: "typescript", Synonyms: []string{"typescript", "ts"}},
			{Name: "csharp", Synonyms: []string{"c#", "csharp", ".net", "dotnet"}},
			{Name: "cpp", Synonyms: []string{"c++", "cpp"}},
			{Name: "go", Synonyms: []string{"go", "golang"}},
			{Name: "rust", Synonyms: []string{"rust"}},
			{Name: "ruby", Synonyms: []string{"ruby", "rails"}},
			{Name: "php", Synonyms: []string{"php"}},
			{Name: "kotlin", Synonyms: []string{"kotlin"}},
			{Name: "scala", Synonyms: []string{"scala"}},
			{Name: "swift", Synonyms: []string{"swift"}},
		}},
		{Name: "frameworks", Skills: []Skill{
			{Name: "spring", Synonyms: []string{"spring", "spring boot", "spring mvc", "spring framework", "spring cloud"}},
			{Name: "hibernate", Synonyms: []string{"hibernate", "jpa"}},
			{Name: "django", Synonyms: []string{"django"}},
			{Name: "flask", Synonyms: []string{"flask"}},
			{Name: "react", Synonyms: []string{"react", "reactjs", "react.js"}},
			{Name: "angular", Synonyms: []string{"angular", "angularjs", "angular.js"}},
			{Name: "vue", Synonyms: []string{"vue", "vuejs", "vue.js"}},
			{Name: "nodejs", Synonyms: []string{"node", "nodejs", "node.js"}},
			{Name: "express", Synonyms: []string{"express", "expressjs", "express.js"}},
			{Name: "aspnet", Synonyms: []string{"asp.net", "aspnet"}},
			{Name: "struts", Synonyms: []string{"struts"}},
			{Name: "jsf", Synonyms: []string{"jsf", "java server faces"}},
		}},
		{Name: "databases", Skills: []Skill{
			{Name: "mysql", Synonyms: []string{"mysql"}},
			{Name: "postgresql", Synonyms: []string{"postgresql", "postgres"}},
			{Name: "mongodb", Synonyms: []string{"mongodb", "mongo"}},
			{Name: "oracle", Synonyms: []string{"oracle", "oracle db", "oracle database"}},
			{Name: "sqlserver", Synonyms: []string{"sql server", "mssql", "ms sql"}},
			{Name: "redis", Synonyms: []string{"redis"}},
			{Name: "cassandra", Synonyms: []string{"cassandra"}},
			{Name: "dynamodb", Synonyms: []string{"dynamodb"}},
			{Name: "db2", Synonyms: []string{"db2"}},
		}},
		{Name: "cloud", Skills: []Skill{
			{Name: "aws", Synonyms: []string{"aws", "amazon web services", "ec2", "s3", "lambda", "cloudformation"}},
			{Name: "azure", Synonyms: []string{"azure", "microsoft azure"}},
			{Name: "gcp", Synonyms: []string{"gcp", "google cloud", "google cloud platform"}},
		}},
		{Name: "devops", Skills: []Skill{
			{Name: "docker", Synonyms: []string{"docker"}},
			{Name: "kubernetes", Synonyms: []string{"kubernetes", "k8s"}},
			{Name: "jenkins", Synonyms: []string{"jenkins"}},
			{Name: "git", Synonyms: []string{"git", "github", "gitlab", "bitbucket"}},
			{Name: "cicd", Synonyms: []string{"ci/cd", "cicd", "continuous integration", "continuous deployment"}},
			{Name: "maven", Synonyms: []string{"maven"}},
			{Name: "gradle", Synonyms: []string{"gradle"}},
			{Name: "ansible", Synonyms: []string{"ansible"}},
			{Name: "terraform", Synonyms: []string{"terraform"}},
		}},
		{Name: "web_technologies", Skills: []Skill{
			{Name: "html", Synonyms: []string{"html", "html5"}},
			{Name: "css", Synonyms: []string{"css", "css3", "sass", "less"}},
			{Name: "rest", Synonyms: []string{"rest", "restful", "rest api"}},
			{Name: "soap", Synonyms: []string{"soap"}},
			{Name: "microservices", Synonyms: []string{"microservices", "microservice"}},
			{Name: "graphql", Synonyms: []string{"graphql"}},
			{Name: "json", Synonyms: []string{"json"}},
			{Name: "xml", Synonyms: []string{"xml"}},
		}},
		{Name: "methodologies", Skills: []Skill{
			{Name: "agile", Synonyms: []string{"agile"}},
			{Name: "scrum", Synonyms: []string{"scrum"}},
			{Name: "kanban", Synonyms: []string{"kanban"}},
			{Name: "devops", Synonyms: []string{"devops"}},
			{Name: "tdd", Synonyms: []string{"tdd", "test driven development"}},
			{Name: "bdd", Synonyms: []string{"bdd", "behavior driven development"}},
		}},
	}}
}
