// Package analysisrun stores anonymous analysis run counters in PostgreSQL.
// No input text is ever written.
package analysisrun

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bahr-checker/internal/adapter/postgres"
	"github.com/heartmarshall/bahr-checker/internal/domain"
)

const table = "analysis_runs"

// Repo provides analysis run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analysis run repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts run. A zero ID or CreatedAt is filled in before insert.
func (r *Repo) Create(ctx context.Context, run *domain.AnalysisRun) (*domain.AnalysisRun, error) {
	saved := *run
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "script", "mode", "line_count", "invalid_line_count",
			"error_line_count", "has_errors", "dominant_signature", "created_at").
		Values(saved.ID, string(saved.Script), string(saved.Mode), saved.LineCount, saved.InvalidLineCount,
			saved.ErrorLineCount, saved.HasErrors, saved.DominantSignature, saved.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert analysis_run: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "analysis_run", saved.ID)
	}
	return &saved, nil
}

// StatsByScript aggregates runs per script, ordered by script.
// Returns an empty slice when nothing has been recorded.
func (r *Repo) StatsByScript(ctx context.Context) ([]domain.ScriptStats, error) {
	sql, args, err := postgres.Builder().
		Select(
			"script",
			"count(*)",
			"coalesce(sum(line_count), 0)",
			"count(*) FILTER (WHERE has_errors)",
		).
		From(table).
		GroupBy("script").
		OrderBy("script ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats by script: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("stats by script: %w", err)
	}

	stats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScriptStats, error) {
		var (
			s                   domain.ScriptStats
			script              string
			runs, lines, failed int64
		)
		if err := row.Scan(&script, &runs, &lines, &failed); err != nil {
			return s, err
		}
		s.Script = domain.Script(script)
		s.Runs = int(runs)
		s.Lines = int(lines)
		s.RunsWithErrors = int(failed)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan stats by script: %w", err)
	}
	if stats == nil {
		stats = []domain.ScriptStats{}
	}
	return stats, nil
}
