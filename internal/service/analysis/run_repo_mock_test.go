package analysis

import (
	"context"
	"sync"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

var _ runRepo = &runRepoMock{}

type runRepoMock struct {
	CreateFunc        func(ctx context.Context, run *domain.AnalysisRun) (*domain.AnalysisRun, error)
	StatsByScriptFunc func(ctx context.Context) ([]domain.ScriptStats, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Run *domain.AnalysisRun
		}
		StatsByScript []struct {
			Ctx context.Context
		}
	}
	lockCreate        sync.RWMutex
	lockStatsByScript sync.RWMutex
}

func (mock *runRepoMock) Create(ctx context.Context, run *domain.AnalysisRun) (*domain.AnalysisRun, error) {
	if mock.CreateFunc == nil {
		panic("runRepoMock.CreateFunc: method is nil but runRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Run *domain.AnalysisRun
	}{Ctx: ctx, Run: run}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, run)
}

func (mock *runRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Run *domain.AnalysisRun
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *runRepoMock) StatsByScript(ctx context.Context) ([]domain.ScriptStats, error) {
	if mock.StatsByScriptFunc == nil {
		panic("runRepoMock.StatsByScriptFunc: method is nil but runRepo.StatsByScript was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStatsByScript.Lock()
	mock.calls.StatsByScript = append(mock.calls.StatsByScript, callInfo)
	mock.lockStatsByScript.Unlock()
	return mock.StatsByScriptFunc(ctx)
}

func (mock *runRepoMock) StatsByScriptCalls() []struct {
	Ctx context.Context
} {
	mock.lockStatsByScript.RLock()
	calls := mock.calls.StatsByScript
	mock.lockStatsByScript.RUnlock()
	return calls
}
