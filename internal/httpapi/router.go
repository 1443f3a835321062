package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	sh := SearchHandler{Searcher: d.Searcher, Hub: d.Hub}
	mux.HandleFunc("/api/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Search,
	}))

	// single analyze endpoint; upload and scoring happen in one place
	rh := ResumeHandler{Analyzer: d.Analyzer, Hub: d.Hub}
	mux.HandleFunc("/api/analyze-cv", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Analyze,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
