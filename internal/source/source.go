package source

import (
	"context"
	"strings"

	"jobtrack-engine/internal/domain"
)

// Adapter retrieves postings for one external board. Implementations are
// stateless between calls and safe for concurrent use with distinct
// arguments.
//
// Adapters absorb their own failures: an unreachable site or an unexpected
// page shape yields a best-effort (usually empty) list and an internal log
// line, never an error that could fail the whole aggregate. The error
// return exists for programming mistakes only.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, query, location string) ([]domain.Posting, error)
}

// Result pairs one adapter invocation with its output. It lives only for
// the duration of a merge.
type Result struct {
	Source   string
	Postings []domain.Posting
}

// Registration binds an adapter to the regions it serves. An empty region
// list means the adapter runs for every location.
type Registration struct {
	Adapter Adapter
	Regions []string // lowercase substrings matched against the location
}

func (r Registration) AppliesTo(location string) bool {
	if len(r.Regions) == 0 {
		return true
	}
	loc := strings.ToLower(strings.TrimSpace(location))
	for _, region := range r.Regions {
		if strings.Contains(loc, region) {
			return true
		}
	}
	return false
}
