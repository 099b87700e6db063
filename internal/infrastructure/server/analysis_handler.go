package server

import (
	"encoding/json"
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repograde/internal/domain/commands"
	"github.com/rios0rios0/repograde/internal/domain/entities"
)

const maxRequestBytes = 1 << 20

const (
	msgInvalidURL    = "Invalid GitHub URL"
	msgFetchFailed   = "Failed to fetch repository. It might be private or doesn't exist."
	msgSaveFailed    = "Failed to save analysis"
	msgHistoryFailed = "Failed to fetch history"
)

// AnalysisHandler exposes the analyze and history commands over HTTP.
type AnalysisHandler struct {
	analyze commands.Analyze
	history commands.History
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analyze commands.Analyze, history commands.History) *AnalysisHandler {
	return &AnalysisHandler{analyze: analyze, history: history}
}

type analyzeRequest struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Analyze handles POST /api/analyze.
func (it *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var request analyzeRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&request); err != nil || request.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidURL})
		return
	}

	analysis, err := it.analyze.Execute(r.Context(), commands.AnalyzeOptions{URL: request.URL})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, analysis.Result())
	case errors.Is(err, commands.ErrInvalidRepositoryURL):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidURL})
	case errors.Is(err, commands.ErrHistoryWriteFailed):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgSaveFailed})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgFetchFailed})
	}
}

// History handles GET /api/history.
func (it *AnalysisHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := it.history.Execute(r.Context(), commands.HistoryOptions{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgHistoryFailed})
		return
	}
	if records == nil {
		records = []entities.Analysis{}
	}
	writeJSON(w, http.StatusOK, records)
}

// Health handles GET /healthz.
func (it *AnalysisHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warnf("Failed to write response: %v", err)
	}
}
