// Package bahr implements the bahr catalog repository using PostgreSQL.
package bahr

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bahr-checker/internal/adapter/postgres"
	"github.com/heartmarshall/bahr-checker/internal/domain"
)

const table = "bahrs"

var columns = []string{"id", "slug", "name", "name_roman", "feet", "signature", "created_at", "updated_at"}

// Repo provides bahr catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bahr repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every bahr ordered by slug.
func (r *Repo) List(ctx context.Context) ([]domain.Bahr, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bahrs: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bahrs: %w", err)
	}

	bahrs, err := pgx.CollectRows(rows, scanBahr)
	if err != nil {
		return nil, fmt.Errorf("scan bahrs: %w", err)
	}
	return bahrs, nil
}

// GetBySignature returns the bahr with the given flat weight signature.
// Returns domain.ErrNotFound if none matches.
func (r *Repo) GetBySignature(ctx context.Context, signature string) (*domain.Bahr, error) {
	return r.getOne(ctx, squirrel.Eq{"signature": signature}, signature)
}

// GetBySlug returns the bahr with the given slug.
// Returns domain.ErrNotFound if none matches.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Bahr, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, slug)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key string) (*domain.Bahr, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bahr: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "bahr", key)
	}

	b, err := pgx.CollectExactlyOneRow(rows, scanBahr)
	if err != nil {
		return nil, postgres.MapError(err, "bahr", key)
	}
	return &b, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts b or, when its slug already exists, updates the name,
// feet and signature. The signature is derived from the feet. Returns the
// stored row. A signature owned by another slug yields domain.ErrAlreadyExists.
func (r *Repo) Upsert(ctx context.Context, b domain.Bahr) (*domain.Bahr, error) {
	sig := domain.BahrSignature(b.Feet)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("slug", "name", "name_roman", "feet", "signature").
		Values(b.Slug, b.Name, b.NameRoman, b.Feet, sig).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			name_roman = EXCLUDED.name_roman,
			feet = EXCLUDED.feet,
			signature = EXCLUDED.signature,
			updated_at = now()
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert bahr: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "bahr", b.Slug)
	}

	saved, err := pgx.CollectExactlyOneRow(rows, scanBahr)
	if err != nil {
		return nil, postgres.MapError(err, "bahr", b.Slug)
	}
	return &saved, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanBahr(row pgx.CollectableRow) (domain.Bahr, error) {
	var b domain.Bahr
	err := row.Scan(&b.ID, &b.Slug, &b.Name, &b.NameRoman, &b.Feet, &b.Signature, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
