package analysis

import (
	"context"
	"sync"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

var _ bahrRepo = &bahrRepoMock{}

type bahrRepoMock struct {
	GetBySignatureFunc func(ctx context.Context, signature string) (*domain.Bahr, error)

	calls struct {
		GetBySignature []struct {
			Ctx       context.Context
			Signature string
		}
	}
	lockGetBySignature sync.RWMutex
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
