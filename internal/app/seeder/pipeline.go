package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

// Result counts what one pipeline run did to the catalog.
type Result struct {
	Inserted  int
	Updated   int
	Unchanged int
	Duration  time.Duration
}

// Pipeline upserts catalog entries in a single transaction: either the
// whole file lands or nothing does.
type Pipeline struct {
	log  *slog.Logger
	repo BahrRepo
	tx   TxRunner
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo BahrRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("service", "seeder"),
		repo: repo,
		tx:   tx,
		cfg:  cfg,
	}
}

// Run writes bahrs. Entries identical to the stored row are left alone.
// With DryRun set the transaction is still opened for the comparison but
// nothing is written.
func (p *Pipeline) Run(ctx context.Context, bahrs []domain.Bahr) (Result, error) {
	start := time.Now()
	var res Result

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		res = Result{}
		for _, b := range bahrs {
			action, err := p.apply(ctx, b)
			if err != nil {
				return fmt.Errorf("bahr %s: %w", b.Slug, err)
			}
			switch action {
			case actionInsert:
				res.Inserted++
			case actionUpdate:
				res.Updated++
			default:
				res.Unchanged++
			}
			p.log.DebugContext(ctx, "bahr processed",
				slog.String("slug", b.Slug),
				slog.String("action", string(action)),
			)
		}
		return nil
	})
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}

	p.log.InfoContext(ctx, "catalog seeded",
		slog.Bool("dry_run", p.cfg.DryRun),
		slog.Int("inserted", res.Inserted),
		slog.Int("updated", res.Updated),
		slog.Int("unchanged", res.Unchanged),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

type action string

const (
	actionInsert action = "insert"
	actionUpdate action = "update"
	actionKeep   action = "keep"
)

func (p *Pipeline) apply(ctx context.Context, b domain.Bahr) (action, error) {
	stored, err := p.repo.GetBySlug(ctx, b.Slug)
	act := actionUpdate
	switch {
	case errors.Is(err, domain.ErrNotFound):
		act = actionInsert
	case err != nil:
		return "", fmt.Errorf("get by slug: %w", err)
	case sameContent(*stored, b):
		return actionKeep, nil
	}

	if p.cfg.DryRun {
		return act, nil
	}
	if _, err := p.repo.Upsert(ctx, b); err != nil {
		return "", fmt.Errorf("upsert: %w", err)
	}
	return act, nil
}

func sameContent(a, b domain.Bahr) bool {
	return a.Name == b.Name &&
		a.NameRoman == b.NameRoman &&
		slices.Equal(a.Feet, b.Feet)
}
