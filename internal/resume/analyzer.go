// Package resume implements the resume-to-recommendations path: extract
// text, recognize skills, search per top skill through the shared
// aggregator, then score and rank the merged postings.
package resume

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/rank"
	"jobtrack-engine/internal/skills"
)

// Searcher is what the analyzer needs from the aggregator.
type Searcher interface {
	Fetch(ctx context.Context, query, location string) (domain.AggregateResponse, error)
}

type Options struct {
	TopSkills      int // how many extracted skills drive searches
	MaxRecommended int
	MinMatchScore  int // ranked postings at or below this are dropped
}

func (o *Options) fillDefaults() {
	if o.TopSkills <= 0 {
		o.TopSkills = 5
	}
	if o.MaxRecommended <= 0 {
		o.MaxRecommended = 10
	}
}

type Analysis struct {
	Skills          []string         `json:"skills"`
	RecommendedJobs []domain.Posting `json:"recommended_jobs"`
	TotalJobs       int              `json:"total_jobs"`
}

type Analyzer struct {
	extractor TextExtractor
	searcher  Searcher
	scorer    *rank.Scorer
	opts      Options
	log       *zap.Logger
}

func NewAnalyzer(extractor TextExtractor, searcher Searcher, scorer *rank.Scorer, opts Options, log *zap.Logger) *Analyzer {
	opts.fillDefaults()
	return &Analyzer{
		extractor: extractor,
		searcher:  searcher,
		scorer:    scorer,
		opts:      opts,
		log:       log.Named("resume"),
	}
}

// Analyze processes one uploaded resume. Only PDF uploads are accepted.
// The returned errors are ErrUnsupportedFormat, ErrUnreadableDocument, or
// nothing; search-side failures degrade inside the aggregator.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, filename, location string) (Analysis, error) {
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".pdf") {
		return Analysis{}, fmt.Errorf("%w: only PDF resumes are accepted", domain.ErrUnsupportedFormat)
	}

	text, err := a.extractor.Extract(data)
	if err != nil {
		return Analysis{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Analysis{}, fmt.Errorf("%w: no text extracted", domain.ErrUnreadableDocument)
	}

	set := skills.Extract(text)
	sorted := set.Sorted()
	a.log.Info("skills extracted", zap.Int("count", len(sorted)))

	if location == "" {
		location = "Remote"
	}

	top := sorted
	if len(top) > a.opts.TopSkills {
		top = top[:a.opts.TopSkills]
	}

	// One aggregator search per driving skill; the shared result cache
	// makes repeat analyses cheap.
	seen := map[domain.Key]bool{}
	var merged []domain.Posting
	for _, skill := range top {
		resp, err := a.searcher.Fetch(ctx, skill, location)
		if err != nil {
			a.log.Warn("skill search failed", zap.String("skill", skill), zap.Error(err))
			continue
		}
		for _, p := range resp.Jobs {
			if seen[p.Key()] {
				continue
			}
			seen[p.Key()] = true
			merged = append(merged, p)
		}
	}

	ranked := a.scorer.Rank(set, merged, a.opts.MinMatchScore)
	total := len(ranked)
	if len(ranked) > a.opts.MaxRecommended {
		ranked = ranked[:a.opts.MaxRecommended]
	}

	return Analysis{
		Skills:          sorted,
		RecommendedJobs: ranked,
		TotalJobs:       total,
	}, nil
}
