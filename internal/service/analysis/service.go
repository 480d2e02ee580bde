package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody"
)

type bahrRepo interface {
	GetBySignature(ctx context.Context, signature string) (*domain.Bahr, error)
}

type runRepo interface {
	Create(ctx context.Context, run *domain.AnalysisRun) (*domain.AnalysisRun, error)
	StatsByScript(ctx context.Context) ([]domain.ScriptStats, error)
}

// Config holds the service limits.
type Config struct {
	MaxTextLength int
	MaxLines      int
	Workers       int
	RecordRuns    bool
}

// Service runs the analysis pipeline for API and CLI callers, names the
// detected meter from the bahr catalog and keeps anonymous run counters.
type Service struct {
	log   *slog.Logger
	bahrs bahrRepo
	runs  runRepo
	cfg   Config
}

// NewService creates a new analysis service. bahrs and runs may be nil for
// offline use; the catalog lookup and run recording are then skipped.
func NewService(logger *slog.Logger, bahrs bahrRepo, runs runRepo, cfg Config) *Service {
	return &Service{
		log:   logger.With("service", "analysis"),
		bahrs: bahrs,
		runs:  runs,
		cfg:   cfg,
	}
}

// Analyze validates the input and runs the pipeline. Catalog lookup and run
// recording are best effort: their failures are logged and never change
// the result.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (*domain.CompositionResult, error) {
	if err := in.Validate(s.cfg.MaxTextLength, s.cfg.MaxLines); err != nil {
		return nil, err
	}

	start := time.Now()
	res := prosody.Analyze(in.Text,
		prosody.WithMode(in.mode()),
		prosody.WithWorkers(s.cfg.Workers),
	)

	s.nameMeter(ctx, &res)
	s.recordRun(ctx, res)

	s.log.InfoContext(ctx, "composition analysed",
		slog.String("script", res.Language.String()),
		slog.String("mode", res.Mode.String()),
		slog.Int("lines", len(res.Lines)),
		slog.Bool("has_errors", res.HasErrors),
		slog.Duration("duration", time.Since(start)),
	)

	return &res, nil
}

func (s *Service) nameMeter(ctx context.Context, res *domain.CompositionResult) {
	if s.bahrs == nil || res.Meter == nil || res.Dominant == nil {
		return
	}

	bahr, err := s.bahrs.GetBySignature(ctx, res.Dominant.WeightSignature)
	switch {
	case err == nil:
		res.Meter.Bahr = bahr
	case errors.Is(err, domain.ErrNotFound):
	default:
		s.log.WarnContext(ctx, "bahr lookup failed",
			slog.String("signature", res.Dominant.WeightSignature),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) recordRun(ctx context.Context, res domain.CompositionResult) {
	if s.runs == nil || !s.cfg.RecordRuns || len(res.Lines) == 0 {
		return
	}

	run := domain.NewAnalysisRun(res)
	if _, err := s.runs.Create(ctx, &run); err != nil {
		s.log.WarnContext(ctx, "record analysis run failed", slog.String("error", err.Error()))
	}
}

// Stats returns run counters grouped by script.
func (s *Service) Stats(ctx context.Context) ([]domain.ScriptStats, error) {
	if s.runs == nil {
		return []domain.ScriptStats{}, nil
	}

	stats, err := s.runs.StatsByScript(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats by script: %w", err)
	}
	return stats, nil
}
