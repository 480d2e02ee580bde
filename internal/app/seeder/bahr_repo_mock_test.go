package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

var _ BahrRepo = &BahrRepoMock{}

type BahrRepoMock struct {
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Bahr, error)
	UpsertFunc    func(ctx context.Context, b domain.Bahr) (*domain.Bahr, error)

	calls struct {
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		Upsert []struct {
			Ctx context.Context
			B   domain.Bahr
		}
	}
	lockGetBySlug sync.RWMutex
	lockUpsert    sync.RWMutex
}

func (mock *BahrRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Bahr, error) {
	if mock.GetBySlugFunc == nil {
		panic("BahrRepoMock.GetBySlugFunc: method is nil but BahrRepo.GetBySlug was just called")
	}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug})
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *BahrRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	defer mock.lockGetBySlug.RUnlock()
	return mock.calls.GetBySlug
}

func (mock *BahrRepoMock) Upsert(ctx context.Context, b domain.Bahr) (*domain.Bahr, error) {
	if mock.UpsertFunc == nil {
		panic("BahrRepoMock.UpsertFunc: method is nil but BahrRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		Ctx context.Context
		B   domain.Bahr
	}{Ctx: ctx, B: b})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, b)
}

func (mock *BahrRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	B   domain.Bahr
} {
	mock.lockUpsert.RLock()
	defer mock.lockUpsert.RUnlock()
	return mock.calls.Upsert
}
