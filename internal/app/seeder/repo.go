// Package seeder loads the bahr catalog file into PostgreSQL.
package seeder

import (
	"context"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

// BahrRepo is the storage contract the pipeline writes through.
// Implemented by bahr.Repo.
type BahrRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Bahr, error)
	Upsert(ctx context.Context, b domain.Bahr) (*domain.Bahr, error)
}

// TxRunner runs fn in one transaction. Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
