package nlp

import (
	"regexp"
	"strings"
)

// Extraction is the result of analyzing a free-text job description.
type Extraction struct {
	Keywords     []string `json:"keywords"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`
}

const (
	maxKeywords     = 20
	maxRequirements = 10
	minTokenLength  = 3
)

// Precompiled requirement matchers; each spans from the trigger to the
// next period.
var requirementRes = buildRequirementRes()

// techSkills is the recognized technology vocabulary. A skill is reported
// when its lowercase form appears anywhere in the input text.
var techSkills = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust",
	"react", "vue", "angular", "nodejs", "express", "django", "flask", "spring", "laravel",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "github", "gitlab",
	"mongodb", "postgresql", "mysql", "redis", "elasticsearch", "graphql", "rest", "api",
	"machine learning", "ai", "data science", "analytics", "sql", "nosql", "microservices",
	"agile", "scrum", "devops", "ci/cd", "git", "testing", "jest", "pytest", "junit",
}

// requirementTriggers mark sentences that describe qualifications.
var requirementTriggers = []string{
	"bachelor", "master", "degree", "years experience", "experience", "required", "must have",
	"should have", "preferred", "nice to have", "bonus", "plus", "certification", "certified",
}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "you": {},
	"our": {}, "will": {}, "has": {}, "can": {}, "may": {},
}

var tokenRe = regexp.MustCompile(`[a-z0-9][a-z0-9+#./-]*`)

// Extract produces keyword, skill, and requirement-phrase sets from free
// text. It is a pure function; empty or unusable input yields empty sets.
func Extract(text string) Extraction {
	lower := strings.ToLower(text)

	return Extraction{
		Keywords:     extractKeywords(lower),
		Skills:       extractSkills(lower),
		Requirements: extractRequirements(text),
	}
}

func extractKeywords(lower string) []string {
	tokens := tokenRe.FindAllString(lower, -1)

	out := make([]string, 0, maxKeywords)
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minTokenLength {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

func extractSkills(lower string) []string {
	out := make([]string, 0)
	for _, skill := range techSkills {
		if strings.Contains(lower, skill) {
			out = append(out, skill)
		}
	}
	return out
}

func extractRequirements(text string) []string {
	out := make([]string, 0, maxRequirements)
	seen := make(map[string]struct{})
	for _, re := range requirementRes {
		for _, m := range re.FindAllString(text, -1) {
			phrase := strings.TrimSpace(m)
			if phrase == "" {
				continue
			}
			if _, ok := seen[phrase]; ok {
				continue
			}
			seen[phrase] = struct{}{}
			out = append(out, phrase)
			if len(out) == maxRequirements {
				return out
			}
		}
	}
	return out
}

func buildRequirementRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(requirementTriggers))
	for _, trigger := range requirementTriggers {
		res = append(res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(trigger)+`[^.]*\.`))
	}
	return res
}
