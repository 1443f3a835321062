package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesSubscribers(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish("hello")

	select {
	case msg := <-ch:
		assert.Equal(t, "hello", msg)
	default:
		t.Fatal("no message delivered")
	}
}

func TestHubDropsWhenSubscriberFull(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	for i := 0; i < 50; i++ {
		h.Publish("msg")
	}
	// buffered at 10; the rest were dropped, not blocked on
	assert.Equal(t, 10, len(ch))
}

func TestMakeEventEnvelope(t *testing.T) {
	raw := MakeEvent("req-1", "search_completed", 1, SearchCompleted{
		Query:     "backend",
		Location:  "Remote",
		TotalJobs: 3,
	})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, "search_completed", e.Type)
	assert.Equal(t, 1, e.Version)
	assert.Equal(t, "req-1", e.RequestID)
	assert.False(t, e.At.IsZero())
	assert.JSONEq(t, `{"query":"backend","location":"Remote","total_jobs":3}`, string(e.Data))
}
