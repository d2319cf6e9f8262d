package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateSettingsFunc func(ctx context.Context, id uuid.UUID, language string, liveMode bool) (*domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateSettings []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Language string
			LiveMode bool
		}
	}
	lockGetByID        sync.RWMutex
	lockUpdateSettings sync.RWMutex
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpdateSettings(ctx context.Context, id uuid.UUID, language string, liveMode bool) (*domain.Profile, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("profileRepoMock.UpdateSettingsFunc: method is nil but profileRepo.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Language string
		LiveMode bool
	}{Ctx: ctx, ID: id, Language: language, LiveMode: liveMode}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, id, language, liveMode)
}

func (mock *profileRepoMock) UpdateSettingsCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Language string
	LiveMode bool
} {
	mock.lockUpdateSettings.RLock()
	calls := mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}
