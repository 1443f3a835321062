// Package aggregate fans a search out to every applicable source adapter,
// merges what comes back into one deduplicated response, and fronts the
// whole thing with a TTL cache.
package aggregate

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobtrack-engine/internal/cache"
	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/source"
	"jobtrack-engine/internal/source/direct"
	"jobtrack-engine/internal/source/util"
)

type Options struct {
	AdapterTimeout time.Duration // per adapter, not per search
	CacheTTL       time.Duration
	MinResults     int // below this the Direct supplement kicks in
	DirectLimit    int
}

func (o *Options) fillDefaults() {
	if o.AdapterTimeout <= 0 {
		o.AdapterTimeout = 20 * time.Second
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = time.Hour
	}
	if o.MinResults < 0 {
		o.MinResults = 0
	}
	if o.DirectLimit <= 0 {
		o.DirectLimit = 10
	}
}

// History is the optional append-only record of past searches. It is a
// secondary read-through cache: when it is nil or failing, searches still
// work, just colder.
type History interface {
	Recent(ctx context.Context, query, location string, maxAge time.Duration) ([]domain.Posting, error)
	Append(ctx context.Context, query, location string, jobs []domain.Posting) error
}

type Aggregator struct {
	sources []source.Registration
	cache   *cache.ResultCache
	history History
	opts    Options
	log     *zap.Logger
}

func New(sources []source.Registration, c *cache.ResultCache, history History, opts Options, log *zap.Logger) *Aggregator {
	opts.fillDefaults()
	return &Aggregator{
		sources: sources,
		cache:   c,
		history: history,
		opts:    opts,
		log:     log.Named("aggregate"),
	}
}

// Fetch runs one search. Source failures and timeouts degrade to empty
// contributions; the only error a caller can see is ErrInvalidInput.
func (a *Aggregator) Fetch(ctx context.Context, query, location string) (domain.AggregateResponse, error) {
	query = util.CleanText(query)
	location = util.CleanText(location)
	if query == "" {
		return domain.AggregateResponse{}, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if !hasLetter(query) {
		return domain.AggregateResponse{}, fmt.Errorf("%w: query must contain a letter", domain.ErrInvalidInput)
	}

	key := cache.Key(query, location)
	if resp, ok := a.cache.Get(key); ok {
		a.log.Debug("cache hit", zap.String("key", key))
		return resp, nil
	}

	if resp, ok := a.fromHistory(ctx, query, location); ok {
		a.cache.Put(key, resp, a.opts.CacheTTL)
		return resp, nil
	}

	applicable := make([]source.Registration, 0, len(a.sources))
	for _, reg := range a.sources {
		if reg.AppliesTo(location) {
			applicable = append(applicable, reg)
		}
	}

	// Fixed-index slice keeps the merge in declared source order no matter
	// which adapter finishes first.
	results := make([]source.Result, len(applicable))

	var g errgroup.Group
	for i, reg := range applicable {
		i, reg := i, reg
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, a.opts.AdapterTimeout)
			defer cancel()

			name := reg.Adapter.Name()
			postings, err := reg.Adapter.Fetch(fctx, query, location)
			if err != nil {
				// adapters absorb their own failures; anything that still
				// escapes is treated exactly like an unreachable source
				a.log.Warn("adapter error, contributing nothing", zap.String("source", name), zap.Error(err))
				return nil
			}
			results[i] = source.Result{Source: name, Postings: postings}
			return nil
		})
	}
	_ = g.Wait()

	merged, perSource := merge(results)

	if len(merged) < a.opts.MinResults {
		seen := make(map[domain.Key]bool, len(merged))
		for _, p := range merged {
			seen[p.Key()] = true
		}
		for _, p := range direct.Postings(query, a.opts.DirectLimit) {
			if seen[p.Key()] {
				continue
			}
			seen[p.Key()] = true
			merged = append(merged, p)
			perSource[domain.SourceDirect]++
		}
	}

	resp := domain.AggregateResponse{
		Jobs:            merged,
		TotalJobs:       len(merged),
		SourceBreakdown: perSource,
	}

	a.cache.Put(key, resp, a.opts.CacheTTL)
	a.record(query, location, merged)

	a.log.Info("search aggregated",
		zap.String("query", query),
		zap.String("location", location),
		zap.Int("sources", len(applicable)),
		zap.Int("jobs", len(merged)),
	)
	return resp, nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// merge flattens per-source results in declared order, dropping every
// posting whose (title, company) key has already been seen.
func merge(results []source.Result) ([]domain.Posting, map[string]int) {
	seen := map[domain.Key]bool{}
	perSource := map[string]int{}
	var out []domain.Posting

	for _, res := range results {
		for _, p := range res.Postings {
			if seen[p.Key()] {
				continue
			}
			seen[p.Key()] = true
			out = append(out, p)
			perSource[res.Source]++
		}
	}
	return out, perSource
}

func (a *Aggregator) fromHistory(ctx context.Context, query, location string) (domain.AggregateResponse, bool) {
	if a.history == nil {
		return domain.AggregateResponse{}, false
	}

	jobs, err := a.history.Recent(ctx, query, location, a.opts.CacheTTL)
	if err != nil {
		a.log.Warn("history lookup failed", zap.Error(err))
		return domain.AggregateResponse{}, false
	}
	if len(jobs) == 0 {
		return domain.AggregateResponse{}, false
	}

	perSource := map[string]int{}
	for _, p := range jobs {
		perSource[p.Source]++
	}
	a.log.Debug("served from search history", zap.String("query", query), zap.Int("jobs", len(jobs)))
	return domain.AggregateResponse{
		Jobs:            jobs,
		TotalJobs:       len(jobs),
		SourceBreakdown: perSource,
	}, true
}

func (a *Aggregator) record(query, location string, jobs []domain.Posting) {
	if a.history == nil || len(jobs) == 0 {
		return
	}

	// best-effort; not tied to the caller's deadline
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.history.Append(ctx, query, location, jobs); err != nil {
		a.log.Warn("history append failed", zap.Error(err))
	}
}
