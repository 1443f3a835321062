package domain

// Posting is a single job listing normalized across sources.
// Once built by an adapter it is never mutated; scoring returns a copy.
type Posting struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	URL      string `json:"url"`
	Source   string `json:"source"`

	// MatchScore is set only on the resume-analysis path, 0..100.
	MatchScore *int `json:"match_score,omitempty"`
}

// Key is the identity used for dedup: first posting seen for a key wins.
type Key struct {
	Title   string
	Company string
}

func (p Posting) Key() Key {
	return Key{Title: p.Title, Company: p.Company}
}

// WithScore returns a scored copy, leaving the original untouched.
func (p Posting) WithScore(score int) Posting {
	out := p
	out.MatchScore = &score
	return out
}

// AggregateResponse is the merged result of one search across all sources.
type AggregateResponse struct {
	Jobs            []Posting      `json:"jobs"`
	TotalJobs       int            `json:"total_jobs"`
	SourceBreakdown map[string]int `json:"source_breakdown"`
}

// Source names. Adapters stamp every posting they emit with their own name;
// SourceDirect marks synthetic postings added when real results run short.
const (
	SourceLinkedIn  = "LinkedIn"
	SourceIndeed    = "Indeed"
	SourceNaukri    = "Naukri"
	SourceTimesJobs = "TimesJobs"
	SourceShine     = "Shine"
	SourceDirect    = "Direct"
)

// CompanyNotListed is a valid sentinel for postings whose board omits the
// employer; it is not the same as an empty company.
const CompanyNotListed = "Company not listed"
