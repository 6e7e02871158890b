package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gorace/app"
	"gorace/domain/core"
	"gorace/domain/racemodel"
	"gorace/internal/report"
)

// analysisRequest is the POST /api/analyses payload: the three raw RT
// samples plus optional comparison settings.
type analysisRequest struct {
	A              []float64 `json:"a"`
	B              []float64 `json:"b"`
	AB             []float64 `json:"ab"`
	NumPercentiles int       `json:"num_percentiles,omitempty"`
	Percentiles    []float64 `json:"percentiles,omitempty"`
	Names          []string  `json:"names,omitempty"`
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	opts := &racemodel.CompareOptions{
		NumPercentiles: req.NumPercentiles,
		Percentiles:    req.Percentiles,
		Names:          req.Names,
	}
	analysis, err := s.service.Run(r.Context(), req.A, req.B, req.AB, opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, analysis)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if analyses == nil {
		analyses = []*app.Analysis{}
	}
	writeJSON(w, http.StatusOK, analyses)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleAnalysisReport(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(report.HTML(analysis)); err != nil {
		log.Printf("[Server] failed to write report: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Server] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps domain errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case core.IsInvalidArgument(err), core.IsShapeMismatch(err), core.IsIndexMismatch(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case core.IsDataNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[Server] internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
