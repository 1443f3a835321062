package httpapi

import (
	"context"

	"go.uber.org/zap"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/resume"
)

// Searcher and Analyzer are satisfied by aggregate.Aggregator and
// resume.Analyzer; handlers depend on the interfaces so tests can stub
// them.
type Searcher interface {
	Fetch(ctx context.Context, query, location string) (domain.AggregateResponse, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, data []byte, filename, location string) (resume.Analysis, error)
}

type Deps struct {
	Searcher Searcher
	Analyzer Analyzer
	Hub      *events.Hub
	Log      *zap.Logger
}
