package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  software   engineer ", "software engineer"},
		{"data scientist", "data scientist"},
		{"one\ntwo\tthree", "one two three"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanText(tc.in))
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Software Engineer", TitleCase("software engineer"))
	assert.Equal(t, "Devops Lead", TitleCase("  devops   lead "))
	assert.Equal(t, "", TitleCase(""))
}

func TestNormalizeLocation(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pune, pune", "Pune"},
		{"Bangalore, Karnataka, India", "Bangalore, Karnataka, India"},
		{"  Mumbai ,  Mumbai , India", "Mumbai, India"},
		{", ,", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeLocation(tc.in))
	}
}
