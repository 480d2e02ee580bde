package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Bahr, error)
	LookupFunc func(ctx context.Context, signature string) (*domain.Bahr, error)
	FeetFunc   func() []foot.Entry

	calls struct {
		Lookup []struct {
			Ctx       context.Context
			Signature string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *catalogServiceMock) List(ctx context.Context) ([]domain.Bahr, error) {
	if mock.ListFunc == nil {
		panic("catalogServiceMock.ListFunc: method is nil but catalogService.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *catalogServiceMock) Lookup(ctx context.Context, signature string) (*domain.Bahr, error) {
	if mock.LookupFunc == nil {
		panic("catalogServiceMock.LookupFunc: method is nil but catalogService.Lookup was just called")
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, struct {
		Ctx       context.Context
		Signature string
	}{Ctx: ctx, Signature: signature})
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, signature)
}

func (mock *catalogServiceMock) LookupCalls() []struct {
	Ctx       context.Context
	Signature string
} {
	mock.lockLookup.RLock()
	defer mock.lockLookup.RUnlock()
	return mock.calls.Lookup
}

func (mock *catalogServiceMock) Feet() []foot.Entry {
	if mock.FeetFunc == nil {
		panic("catalogServiceMock.FeetFunc: method is nil but catalogService.Feet was just called")
	}
	return mock.FeetFunc()
}
