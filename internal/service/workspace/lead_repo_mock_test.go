package workspace

import (
	"context"
	"sync"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

var _ leadRepo = &leadRepoMock{}

type leadRepoMock struct {
	CreateFunc func(ctx context.Context, l *domain.Lead) error

	calls struct {
		Create []struct {
			L *domain.Lead
		}
	}
	lockCreate sync.RWMutex
}

func (mock *leadRepoMock) Create(ctx context.Context, l *domain.Lead) error {
	if mock.CreateFunc == nil {
		panic("leadRepoMock.CreateFunc: method is nil but leadRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ L *domain.Lead }{L: l})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *leadRepoMock) CreateCalls() []struct{ L *domain.Lead } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
