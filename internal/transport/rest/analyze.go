package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/service/analysis"
)

// maxBodyBytes bounds the request body before the service checks rune and
// line limits. Devanagari takes three bytes per rune.
const maxBodyBytes = 1 << 20

type analysisService interface {
	Analyze(ctx context.Context, in analysis.AnalyzeInput) (*domain.CompositionResult, error)
	Stats(ctx context.Context) ([]domain.ScriptStats, error)
}

// AnalyzeHandler serves composition analysis and run statistics.
type AnalyzeHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(svc analysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, log: logger.With("handler", "analyze")}
}

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text string                  `json:"text"`
	Mode domain.SegmentationMode `json:"mode,omitempty"`
}

// Analyze checks a composition against its dominant meter.
// POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.svc.Analyze(r.Context(), analysis.AnalyzeInput{Text: req.Text, Mode: req.Mode})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// StatsResponse is the body of GET /api/v1/stats.
type StatsResponse struct {
	Scripts []domain.ScriptStats `json:"scripts"`
}

// Stats returns anonymous per-script run counters.
// GET /api/v1/stats
func (h *AnalyzeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if stats == nil {
		stats = []domain.ScriptStats{}
	}
	writeJSON(w, http.StatusOK, StatsResponse{Scripts: stats})
}
