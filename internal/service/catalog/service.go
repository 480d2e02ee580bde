package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
)

type bahrRepo interface {
	List(ctx context.Context) ([]domain.Bahr, error)
	GetBySignature(ctx context.Context, signature string) (*domain.Bahr, error)
}

// Service exposes the bahr catalog and the foot library.
type Service struct {
	log   *slog.Logger
	bahrs bahrRepo
}

// NewService creates a new catalog service.
func NewService(logger *slog.Logger, bahrs bahrRepo) *Service {
	return &Service{
		log:   logger.With("service", "catalog"),
		bahrs: bahrs,
	}
}

// List returns every catalogued bahr ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Bahr, error) {
	bahrs, err := s.bahrs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bahrs: %w", err)
	}
	return bahrs, nil
}

// Lookup finds the bahr with the given flat weight signature. Foot
// separators are accepted: "1212 1122 1212 22" and "1212-1122-1212-22"
// both resolve like "12121122121222".
func (s *Service) Lookup(ctx context.Context, signature string) (*domain.Bahr, error) {
	sig := NormalizeSignature(signature)
	if err := domain.ValidateSignature(sig); err != nil {
		return nil, domain.NewValidationError("signature", err.Error())
	}

	bahr, err := s.bahrs.GetBySignature(ctx, sig)
	if err != nil {
		return nil, fmt.Errorf("get bahr by signature: %w", err)
	}
	return bahr, nil
}

// Feet returns the foot library in declaration order.
func (s *Service) Feet() []foot.Entry {
	return foot.Library()
}

// NormalizeSignature strips spaces, dashes and dots between foot groups.
func NormalizeSignature(sig string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '\t':
			return -1
		}
		return r
	}, sig)
}
