package testhelper

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueSignature returns a weight signature that no seeded bahr uses:
// 24 weights derived from a random id.
func UniqueSignature() string {
	var b strings.Builder
	for _, c := range strings.ReplaceAll(uuid.New().String(), "-", "")[:24] {
		if c < '8' {
			b.WriteByte('1')
		} else {
			b.WriteByte('2')
		}
	}
	return b.String()
}

// SeedBahr inserts a bahr with a unique slug and signature.
func SeedBahr(t *testing.T, pool *pgxpool.Pool) domain.Bahr {
	t.Helper()

	sig := UniqueSignature()
	b := domain.Bahr{
		Slug:      "test-bahr-" + uniqueSuffix(),
		Name:      "परीक्षण बहर",
		NameRoman: "test bahr",
		Feet:      []string{sig[:12], sig[12:]},
		Signature: sig,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO bahrs (slug, name, name_roman, feet, signature)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		b.Slug, b.Name, b.NameRoman, b.Feet, b.Signature,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBahr: %v", err)
	}

	return b
}
