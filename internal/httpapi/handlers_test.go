package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/resume"
)

type stubSearcher struct {
	resp domain.AggregateResponse
	err  error
}

func (s stubSearcher) Fetch(ctx context.Context, query, location string) (domain.AggregateResponse, error) {
	return s.resp, s.err
}

type stubAnalyzer struct {
	analysis resume.Analysis
	err      error
}

func (s stubAnalyzer) Analyze(ctx context.Context, data []byte, filename, location string) (resume.Analysis, error) {
	return s.analysis, s.err
}

func newTestHandler(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return Chain(NewMux(d), RequestID, Recover(d.Log), Cors)
}

func TestSearchOK(t *testing.T) {
	score := 55
	h := newTestHandler(Deps{
		Searcher: stubSearcher{resp: domain.AggregateResponse{
			Jobs: []domain.Posting{
				{Title: "Backend Developer", Company: "Acme", Source: domain.SourceLinkedIn, MatchScore: &score},
			},
			TotalJobs:       1,
			SourceBreakdown: map[string]int{domain.SourceLinkedIn: 1},
		}},
		Hub: events.NewHub(),
	})

	body := strings.NewReader(`{"query":"backend","location":"Remote"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/search", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.AggregateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalJobs)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Backend Developer", resp.Jobs[0].Title)
}

func TestSearchInvalidInput(t *testing.T) {
	h := newTestHandler(Deps{
		Searcher: stubSearcher{err: fmt.Errorf("%w: empty query", domain.ErrInvalidInput)},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":""}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "invalid_input", e.Error.Code)
	assert.NotEmpty(t, e.Error.RequestID)
}

func TestSearchMalformedBody(t *testing.T) {
	h := newTestHandler(Deps{Searcher: stubSearcher{}})

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "invalid_input", e.Error.Code)
}

func TestSearchMethodNotAllowed(t *testing.T) {
	h := newTestHandler(Deps{Searcher: stubSearcher{}})

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
}

func multipartResume(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAnalyzeOK(t *testing.T) {
	score := 72
	h := newTestHandler(Deps{
		Analyzer: stubAnalyzer{analysis: resume.Analysis{
			Skills: []string{"python", "react"},
			RecommendedJobs: []domain.Posting{
				{Title: "Python Developer", Company: "Acme", Source: domain.SourceLinkedIn, MatchScore: &score},
			},
			TotalJobs: 1,
		}},
		Hub: events.NewHub(),
	})

	body, contentType := multipartResume(t, "cv", "resume.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-cv", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var analysis resume.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, []string{"python", "react"}, analysis.Skills)
	require.Len(t, analysis.RecommendedJobs, 1)
	require.NotNil(t, analysis.RecommendedJobs[0].MatchScore)
	assert.Equal(t, 72, *analysis.RecommendedJobs[0].MatchScore)
}

func TestAnalyzeUnsupportedFormat(t *testing.T) {
	h := newTestHandler(Deps{
		Analyzer: stubAnalyzer{err: fmt.Errorf("%w: only PDF resumes are accepted", domain.ErrUnsupportedFormat)},
	})

	body, contentType := multipartResume(t, "cv", "resume.docx")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-cv", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "unsupported_format", e.Error.Code)
}

func TestAnalyzeUnreadableDocument(t *testing.T) {
	h := newTestHandler(Deps{
		Analyzer: stubAnalyzer{err: fmt.Errorf("%w: no text extracted", domain.ErrUnreadableDocument)},
	})

	body, contentType := multipartResume(t, "cv", "resume.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-cv", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "unreadable_document", e.Error.Code)
}

func TestAnalyzeMissingFile(t *testing.T) {
	h := newTestHandler(Deps{Analyzer: stubAnalyzer{}})

	body, contentType := multipartResume(t, "wrong_field", "resume.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-cv", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "invalid_input", e.Error.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(Deps{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
}

func TestRequestIDPropagates(t *testing.T) {
	h := newTestHandler(Deps{Searcher: stubSearcher{}})

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"x"}`))
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc123", rec.Header().Get("X-Request-ID"))
}
