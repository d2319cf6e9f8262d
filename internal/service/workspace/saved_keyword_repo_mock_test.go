package workspace

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

var _ savedKeywordRepo = &savedKeywordRepoMock{}

type savedKeywordRepoMock struct {
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID) ([]domain.SavedKeyword, error)
	CreateFunc          func(ctx context.Context, sk *domain.SavedKeyword) (*domain.SavedKeyword, error)
	DeleteByKeywordFunc func(ctx context.Context, userID uuid.UUID, keyword string) error

	calls struct {
		ListByUser []struct {
			UserID uuid.UUID
		}
		Create []struct {
			SK *domain.SavedKeyword
		}
		DeleteByKeyword []struct {
			UserID  uuid.UUID
			Keyword string
		}
	}
	lockListByUser      sync.RWMutex
	lockCreate          sync.RWMutex
	lockDeleteByKeyword sync.RWMutex
}

func (mock *savedKeywordRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedKeyword, error) {
	if mock.ListByUserFunc == nil {
		panic("savedKeywordRepoMock.ListByUserFunc: method is nil but savedKeywordRepo.ListByUser was just called")
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *savedKeywordRepoMock) ListByUserCalls() []struct{ UserID uuid.UUID } {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *savedKeywordRepoMock) Create(ctx context.Context, sk *domain.SavedKeyword) (*domain.SavedKeyword, error) {
	if mock.CreateFunc == nil {
		panic("savedKeywordRepoMock.CreateFunc: method is nil but savedKeywordRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ SK *domain.SavedKeyword }{SK: sk})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sk)
}

func (mock *savedKeywordRepoMock) CreateCalls() []struct{ SK *domain.SavedKeyword } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *savedKeywordRepoMock) DeleteByKeyword(ctx context.Context, userID uuid.UUID, keyword string) error {
	if mock.DeleteByKeywordFunc == nil {
		panic("savedKeywordRepoMock.DeleteByKeywordFunc: method is nil but savedKeywordRepo.DeleteByKeyword was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		Keyword string
	}{UserID: userID, Keyword: keyword}
	mock.lockDeleteByKeyword.Lock()
	mock.calls.DeleteByKeyword = append(mock.calls.DeleteByKeyword, callInfo)
	mock.lockDeleteByKeyword.Unlock()
	return mock.DeleteByKeywordFunc(ctx, userID, keyword)
}

func (mock *savedKeywordRepoMock) DeleteByKeywordCalls() []struct {
	UserID  uuid.UUID
	Keyword string
} {
	mock.lockDeleteByKeyword.RLock()
	calls := mock.calls.DeleteByKeyword
	mock.lockDeleteByKeyword.RUnlock()
	return calls
}
