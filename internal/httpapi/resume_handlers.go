package httpapi

import (
	"errors"
	"io"
	"net/http"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
)

const maxResumeBytes = 10 << 20 // 10 MiB

type ResumeHandler struct {
	Analyzer Analyzer
	Hub      *events.Hub
}

func (h ResumeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeBytes)

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_input", "expected multipart form with a cv file")
		return
	}

	file, header, err := r.FormFile("cv")
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_input", "no cv file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "unreadable_document", "could not read upload")
		return
	}

	analysis, err := h.Analyzer.Analyze(r.Context(), data, header.Filename, r.FormValue("location"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFormat):
			WriteError(w, r, http.StatusBadRequest, "unsupported_format", "only PDF resumes are accepted")
		case errors.Is(err, domain.ErrUnreadableDocument):
			WriteError(w, r, http.StatusBadRequest, "unreadable_document", "could not extract text from the document")
		default:
			WriteError(w, r, http.StatusInternalServerError, "internal_error", "resume analysis failed")
		}
		return
	}

	if h.Hub != nil {
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, "resume_analyzed", 1, events.ResumeAnalyzed{
			SkillCount: len(analysis.Skills),
			TotalJobs:  analysis.TotalJobs,
		}))
	}

	WriteJSON(w, http.StatusOK, analysis)
}
