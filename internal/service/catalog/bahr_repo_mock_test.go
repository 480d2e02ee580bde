package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

var _ bahrRepo = &bahrRepoMock{}

type bahrRepoMock struct {
	GetBySignatureFunc func(ctx context.Context, signature string) (*domain.Bahr, error)
	ListFunc           func(ctx context.Context) ([]domain.Bahr, error)

	calls struct {
		GetBySignature []struct {
			Ctx       context.Context
			Signature string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockGetBySignature sync.RWMutex
	lockList           sync.RWMutex
}

func (mock *bahrRepoMock) GetBySignature(ctx context.Context, signature string) (*domain.Bahr, error) {
	if mock.GetBySignatureFunc == nil {
		panic("bahrRepoMock.GetBySignatureFunc: method is nil but bahrRepo.GetBySignature was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Signature string
	}{Ctx: ctx, Signature: signature}
	mock.lockGetBySignature.Lock()
	mock.calls.GetBySignature = append(mock.calls.GetBySignature, callInfo)
	mock.lockGetBySignature.Unlock()
	return mock.GetBySignatureFunc(ctx, signature)
}

func (mock *bahrRepoMock) GetBySignatureCalls() []struct {
	Ctx       context.Context
	Signature string
} {
	mock.lockGetBySignature.RLock()
	calls := mock.calls.GetBySignature
	mock.lockGetBySignature.RUnlock()
	return calls
}

func (mock *bahrRepoMock) List(ctx context.Context) ([]domain.Bahr, error) {
	if mock.ListFunc == nil {
		panic("bahrRepoMock.ListFunc: method is nil but bahrRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *bahrRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
