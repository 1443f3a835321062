package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-engine/internal/domain"
)

func sampleResponse(title string) domain.AggregateResponse {
	return domain.AggregateResponse{
		Jobs: []domain.Posting{
			{Title: title, Company: "Acme", Location: "Remote", URL: "#", Source: domain.SourceLinkedIn},
		},
		TotalJobs:       1,
		SourceBreakdown: map[string]int{domain.SourceLinkedIn: 1},
	}
}

func TestKeyNormalization(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		location  string
		query2    string
		location2 string
		same      bool
	}{
		{"case insensitive", "Software Engineer", "Bangalore", "software engineer", "BANGALORE", true},
		{"trims whitespace", "  developer ", " pune", "developer", "pune", true},
		{"distinct queries", "developer", "pune", "designer", "pune", false},
		{"distinct locations", "developer", "pune", "developer", "delhi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k1 := Key(tt.query, tt.location)
			k2 := Key(tt.query2, tt.location2)
			if tt.same {
				assert.Equal(t, k1, k2)
			} else {
				assert.NotEqual(t, k1, k2)
			}
		})
	}
}

func TestGetPut(t *testing.T) {
	c := New(0)
	defer c.Close()

	key := Key("developer", "pune")

	_, ok := c.Get(key)
	assert.False(t, ok, "empty cache must miss")

	want := sampleResponse("Backend Developer")
	c.Put(key, want, time.Hour)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestExpiry(t *testing.T) {
	c := New(0)
	defer c.Close()

	base := time.Now()
	c.now = func() time.Time { return base }

	key := Key("developer", "pune")
	c.Put(key, sampleResponse("Backend Developer"), time.Hour)

	_, ok := c.Get(key)
	require.True(t, ok)

	// one minute past expiry
	c.now = func() time.Time { return base.Add(time.Hour + time.Minute) }
	_, ok = c.Get(key)
	assert.False(t, ok, "expired entry must read as a miss")
}

func TestPutSupersedes(t *testing.T) {
	c := New(0)
	defer c.Close()

	key := Key("developer", "pune")
	c.Put(key, sampleResponse("First"), time.Hour)
	c.Put(key, sampleResponse("Second"), time.Hour)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Second", got.Jobs[0].Title)
	assert.Equal(t, 1, c.Len())
}

func TestCleanUpExpired(t *testing.T) {
	c := New(0)
	defer c.Close()

	base := time.Now()
	c.now = func() time.Time { return base }

	c.Put(Key("a", "x"), sampleResponse("A"), time.Minute)
	c.Put(Key("b", "x"), sampleResponse("B"), time.Hour)
	require.Equal(t, 2, c.Len())

	c.now = func() time.Time { return base.Add(30 * time.Minute) }
	c.cleanUpExpired()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(Key("b", "x"))
	assert.True(t, ok)
}
