package events

import (
	"encoding/json"
	"time"
)

// Event is the envelope every notification travels in. Version guards the
// data shape so UI clients can skip envelopes they don't understand.
type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// SearchCompleted is the payload published after every aggregate search.
type SearchCompleted struct {
	Query     string `json:"query"`
	Location  string `json:"location"`
	TotalJobs int    `json:"total_jobs"`
}

// ResumeAnalyzed is the payload published after a resume analysis; it
// carries counts only, never resume content.
type ResumeAnalyzed struct {
	SkillCount int `json:"skill_count"`
	TotalJobs  int `json:"total_jobs"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
