package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"jobtrack-engine/internal/aggregate"
	"jobtrack-engine/internal/cache"
	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/httpapi"
	"jobtrack-engine/internal/logger"
	"jobtrack-engine/internal/rank"
	"jobtrack-engine/internal/resume"
	"jobtrack-engine/internal/source"
	"jobtrack-engine/internal/source/indeed"
	"jobtrack-engine/internal/source/linkedin"
	"jobtrack-engine/internal/source/naukri"
	"jobtrack-engine/internal/source/shine"
	"jobtrack-engine/internal/source/timesjobs"
	"jobtrack-engine/internal/source/util"
	"jobtrack-engine/internal/store"
)

func main() {
	dataDir := os.Getenv("JOBTRACK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed (%s): %v\n", cfgPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogJSON, cfg.App.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, warn := range validation.Warnings {
		log.Warn("config", zap.String("warning", warn))
	}
	if !validation.OK() {
		for _, e := range validation.Errors {
			log.Error("config", zap.String("error", e))
		}
		os.Exit(1)
	}

	// one engine per data dir
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatal("data dir lock", zap.Error(err))
	}
	if !locked {
		log.Fatal("another engine instance already owns this data dir", zap.String("dir", dataDir))
	}
	defer func() { _ = lock.Unlock() }()

	db, err := store.Open(filepath.Join(dataDir, "jobtrack.db"))
	if err != nil {
		log.Fatal("open db", zap.Error(err))
	}
	defer db.Close()
	if err := store.Migrate(db); err != nil {
		log.Fatal("migrate db", zap.Error(err))
	}

	resultCache := cache.New(time.Duration(cfg.Cache.CleanupMinutes) * time.Minute)
	defer resultCache.Close()

	limiter := util.NewHostLimiter(cfg.Sources.RequestsPerSecond, cfg.Sources.Burst)
	timeout := time.Duration(cfg.Sources.TimeoutSeconds) * time.Second

	var sources []source.Registration
	add := func(sc config.SourceConfig, a source.Adapter) {
		if sc.Enabled {
			sources = append(sources, source.Registration{Adapter: a, Regions: sc.Regions})
		}
	}
	// declared order is merge order
	add(cfg.Sources.LinkedIn, linkedin.New(linkedin.Config{MaxPostings: cfg.Sources.LinkedIn.MaxPostings, Timeout: timeout}, limiter, log))
	add(cfg.Sources.Indeed, indeed.New(indeed.Config{MaxPostings: cfg.Sources.Indeed.MaxPostings, Timeout: timeout}, limiter, log))
	add(cfg.Sources.Naukri, naukri.New(naukri.Config{MaxPostings: cfg.Sources.Naukri.MaxPostings, Timeout: timeout}, limiter, log))
	add(cfg.Sources.TimesJobs, timesjobs.New(timesjobs.Config{MaxPostings: cfg.Sources.TimesJobs.MaxPostings, Timeout: timeout}, limiter, log))
	add(cfg.Sources.Shine, shine.New(shine.Config{MaxPostings: cfg.Sources.Shine.MaxPostings, Timeout: timeout}, limiter, log))

	history := &store.SearchHistory{DB: db}

	agg := aggregate.New(sources, resultCache, history, aggregate.Options{
		AdapterTimeout: timeout,
		CacheTTL:       time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
		MinResults:     cfg.Search.MinResults,
		DirectLimit:    cfg.Search.DirectLimit,
	}, log)

	analyzer := resume.NewAnalyzer(resume.PDFExtractor{}, agg, rank.NewScorer(), resume.Options{
		TopSkills:      cfg.Scoring.TopSkills,
		MaxRecommended: cfg.Scoring.MaxRecommended,
		MinMatchScore:  cfg.Scoring.MinMatchScore,
	}, log)

	hub := events.NewHub()

	mux := httpapi.NewMux(httpapi.Deps{
		Searcher: agg,
		Analyzer: analyzer,
		Hub:      hub,
		Log:      log,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover(log),
		httpapi.AccessLog(log),
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}
	log.Info("engine listening", zap.String("addr", addr), zap.String("data_dir", dataDir))

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.Serve(ln); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}
