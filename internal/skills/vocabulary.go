package skills

// Fixed skill vocabulary, grouped the way recruiters talk about it. All
// entries are lowercase; matching is whole-word and case-insensitive.
var vocabulary = map[string][]string{
	"programming": {"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust"},
	"frameworks":  {"django", "flask", "react", "angular", "vue", "spring", "express", "laravel", "rails"},
	"databases":   {"mysql", "postgresql", "mongodb", "redis", "oracle", "sql server", "sqlite"},
	"cloud":       {"aws", "azure", "gcp", "cloud", "docker", "kubernetes"},
	"tools":       {"git", "jenkins", "jira", "confluence", "agile", "scrum"},
	"ai_ml":       {"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn", "nlp", "computer vision"},
	"web":         {"html", "css", "sass", "bootstrap", "tailwind", "webpack", "node.js"},
	"mobile":      {"android", "ios", "react native", "flutter", "xamarin"},
	"testing":     {"junit", "pytest", "selenium", "cypress", "jest", "mocha"},
}

var stopwords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"with": true, "by": true, "of": true, "is": true, "as": true,
}
