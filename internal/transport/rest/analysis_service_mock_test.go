package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/service/analysis"
)

var _ analysisService = &analysisServiceMock{}

type analysisServiceMock struct {
	AnalyzeFunc func(ctx context.Context, in analysis.AnalyzeInput) (*domain.CompositionResult, error)
	StatsFunc   func(ctx context.Context) ([]domain.ScriptStats, error)

	calls struct {
		Analyze []struct {
			Ctx context.Context
			In  analysis.AnalyzeInput
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockAnalyze sync.RWMutex
	lockStats   sync.RWMutex
}

func (mock *analysisServiceMock) Analyze(ctx context.Context, in analysis.AnalyzeInput) (*domain.CompositionResult, error) {
	if mock.AnalyzeFunc == nil {
		panic("analysisServiceMock.AnalyzeFunc: method is nil but analysisService.Analyze was just called")
	}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, struct {
		Ctx context.Context
		In  analysis.AnalyzeInput
	}{Ctx: ctx, In: in})
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, in)
}

func (mock *analysisServiceMock) AnalyzeCalls() []struct {
	Ctx context.Context
	In  analysis.AnalyzeInput
} {
	mock.lockAnalyze.RLock()
	defer mock.lockAnalyze.RUnlock()
	return mock.calls.Analyze
}

func (mock *analysisServiceMock) Stats(ctx context.Context) ([]domain.ScriptStats, error) {
	if mock.StatsFunc == nil {
		panic("analysisServiceMock.StatsFunc: method is nil but analysisService.Stats was just called")
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *analysisServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	defer mock.lockStats.RUnlock()
	return mock.calls.Stats
}
