package search

import (
	"context"
	"sync"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, query string, mode domain.SearchMode) ([]domain.KeywordResult, error)

	calls struct {
		Generate []struct {
			Query string
			Mode  domain.SearchMode
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, query string, mode domain.SearchMode) ([]domain.KeywordResult, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Query string
		Mode  domain.SearchMode
	}{Query: query, Mode: mode}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, query, mode)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Query string
	Mode  domain.SearchMode
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
