// Package skills turns free-form resume text into a set of recognized
// skill tokens. Extraction is pure: identical text always yields the same
// set, and bad input yields an empty set rather than an error.
package skills

import (
	"regexp"
	"sort"
	"strings"
)

// Set holds lowercase skill tokens, uniqueness enforced by construction.
type Set map[string]struct{}

func (s Set) Add(skill string) { s[skill] = struct{}{} }

func (s Set) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Sorted returns the skills in a stable order so downstream consumers
// (top-N search, API responses) are reproducible.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// competencePhrase captures the phrase after verbs of competence
// ("experienced in X", "proficient with Y"). Only 2..4-word captures are
// kept; anything shorter or longer is discarded as noise.
var competencePhrase = regexp.MustCompile(
	`(?i)\b(?:proficient|experienced|skilled|expert|familiar|worked|knowledge|expertise)\s+(?:in|with|on|using|of)\s+([a-z0-9+#.][a-z0-9+#.\s]*?)(?:[,.;:()\n]|$)`,
)

// Extract runs both extraction steps, vocabulary whole-word match and
// competence-phrase capture, and unions the results.
func Extract(text string) Set {
	found := Set{}
	if strings.TrimSpace(text) == "" {
		return found
	}
	lower := strings.ToLower(text)

	for _, group := range vocabulary {
		for _, skill := range group {
			if ContainsToken(lower, skill) {
				found.Add(skill)
			}
		}
	}

	for _, m := range competencePhrase.FindAllStringSubmatch(lower, -1) {
		phrase := trimStopwords(strings.TrimSpace(m[1]))
		if phrase == "" {
			continue
		}
		words := strings.Fields(phrase)
		if len(words) >= 2 && len(words) <= 4 {
			found.Add(strings.Join(words, " "))
		}
	}

	return found
}

// ContainsToken reports whether skill appears in text (both lowercase)
// without being a fragment of a longer token ("go" must not match
// "django"). + and # count as word characters so "c++" and "c#" bound
// correctly; a dot does not, so "go" still matches at the end of a
// sentence.
func ContainsToken(text, skill string) bool {
	for idx := 0; idx <= len(text)-len(skill); {
		i := strings.Index(text[idx:], skill)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(skill)
		if boundary(text, start-1) && boundary(text, end) {
			return true
		}
		idx = start + 1
	}
	return false
}

func boundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
		return false
	}
	if c == '+' || c == '#' {
		return false
	}
	return true
}

// trimStopwords drops leading and trailing stopwords from a phrase; a
// phrase made entirely of stopwords trims to nothing.
func trimStopwords(phrase string) string {
	words := strings.Fields(phrase)
	for len(words) > 0 && stopwords[words[0]] {
		words = words[1:]
	}
	for len(words) > 0 && stopwords[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
