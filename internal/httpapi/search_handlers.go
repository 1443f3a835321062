package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
)

type SearchHandler struct {
	Searcher Searcher
	Hub      *events.Hub
}

type searchRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

func (h SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")
		return
	}

	resp, err := h.Searcher.Fetch(r.Context(), req.Query, req.Location)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			WriteError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "search failed")
		return
	}

	if h.Hub != nil {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, "search_completed", 1, events.SearchCompleted{
			Query:     req.Query,
			Location:  req.Location,
			TotalJobs: resp.TotalJobs,
		}))
	}

	WriteJSON(w, http.StatusOK, resp)
}
