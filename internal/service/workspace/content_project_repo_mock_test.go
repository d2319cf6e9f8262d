package workspace

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

var _ contentProjectRepo = &contentProjectRepoMock{}

type contentProjectRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID, projectID uuid.UUID) (*domain.ContentProject, error)
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.ContentProject, error)
	CreateFunc       func(ctx context.Context, p *domain.ContentProject) (*domain.ContentProject, error)
	UpdateStatusFunc func(ctx context.Context, userID, projectID uuid.UUID, status domain.ProjectStatus) (*domain.ContentProject, error)
	DeleteFunc       func(ctx context.Context, userID, projectID uuid.UUID) error

	calls struct {
		Create []struct {
			P *domain.ContentProject
		}
		UpdateStatus []struct {
			ProjectID uuid.UUID
			Status    domain.ProjectStatus
		}
		Delete []struct {
			ProjectID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *contentProjectRepoMock) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.ContentProject, error) {
	if mock.GetByIDFunc == nil {
		panic("contentProjectRepoMock.GetByIDFunc: method is nil but contentProjectRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, projectID)
}

func (mock *contentProjectRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentProject, error) {
	if mock.ListByUserFunc == nil {
		panic("contentProjectRepoMock.ListByUserFunc: method is nil but contentProjectRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *contentProjectRepoMock) Create(ctx context.Context, p *domain.ContentProject) (*domain.ContentProject, error) {
	if mock.CreateFunc == nil {
		panic("contentProjectRepoMock.CreateFunc: method is nil but contentProjectRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ P *domain.ContentProject }{P: p})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *contentProjectRepoMock) CreateCalls() []struct{ P *domain.ContentProject } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contentProjectRepoMock) UpdateStatus(ctx context.Context, userID, projectID uuid.UUID, status domain.ProjectStatus) (*domain.ContentProject, error) {
	if mock.UpdateStatusFunc == nil {
		panic("contentProjectRepoMock.UpdateStatusFunc: method is nil but contentProjectRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ProjectID uuid.UUID
		Status    domain.ProjectStatus
	}{ProjectID: projectID, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, projectID, status)
}

func (mock *contentProjectRepoMock) UpdateStatusCalls() []struct {
	ProjectID uuid.UUID
	Status    domain.ProjectStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *contentProjectRepoMock) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contentProjectRepoMock.DeleteFunc: method is nil but contentProjectRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ProjectID uuid.UUID }{ProjectID: projectID})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, projectID)
}
