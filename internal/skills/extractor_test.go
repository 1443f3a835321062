package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVocabulary(t *testing.T) {
	set := Extract("Experienced in Python and proficient with React. Shipped services in Go on AWS.")

	assert.True(t, set.Has("python"))
	assert.True(t, set.Has("react"))
	assert.True(t, set.Has("go"))
	assert.True(t, set.Has("aws"))
	assert.False(t, set.Has("java"))
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   \n\t  "))
}

func TestExtractIsDeterministic(t *testing.T) {
	text := "Skilled in Python, Django and PostgreSQL. Familiar with Docker."
	first := Extract(text).Sorted()
	second := Extract(text).Sorted()
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestExtractCompetencePhrases(t *testing.T) {
	set := Extract("Skilled in distributed systems, with knowledge of event driven design.")

	assert.True(t, set.Has("distributed systems"))
	assert.True(t, set.Has("event driven design"))
}

func TestExtractDiscardsLongPhrases(t *testing.T) {
	set := Extract("Experienced in building large scale multi tenant streaming platforms end to end.")
	assert.False(t, set.Has("building large scale multi tenant streaming platforms end to end"))
}

func TestContainsToken(t *testing.T) {
	cases := []struct {
		text  string
		skill string
		want  bool
	}{
		{"we build services in go", "go", true},
		{"we use go.", "go", true},
		{"django templates everywhere", "go", false},
		{"django templates everywhere", "django", true},
		{"modern c++ codebase", "c++", true},
		{"c# and .net on the backend", "c#", true},
		{"javascript only", "java", false},
		{"java and javascript", "java", true},
		{"restructured the pipeline", "rust", false},
		{"", "go", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ContainsToken(tc.text, tc.skill), "%q in %q", tc.skill, tc.text)
	}
}

func TestSetSorted(t *testing.T) {
	set := Set{}
	set.Add("react")
	set.Add("aws")
	set.Add("python")
	assert.Equal(t, []string{"aws", "python", "react"}, set.Sorted())
}
