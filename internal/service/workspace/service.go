// Package workspace manages the user's saved keywords, content projects and
// captured leads.
package workspace

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// savedKeywordRepo defines the saved-keyword repository interface needed by
// the workspace service.
type savedKeywordRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedKeyword, error)
	Create(ctx context.Context, sk *domain.SavedKeyword) (*domain.SavedKeyword, error)
	DeleteByKeyword(ctx context.Context, userID uuid.UUID, keyword string) error
}

// contentProjectRepo defines the content-project repository interface needed
// by the workspace service.
type contentProjectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.ContentProject, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentProject, error)
	Create(ctx context.Context, p *domain.ContentProject) (*domain.ContentProject, error)
	UpdateStatus(ctx context.Context, userID, projectID uuid.UUID, status domain.ProjectStatus) (*domain.ContentProject, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}

// leadRepo defines the lead repository interface needed by the workspace
// service.
type leadRepo interface {
	Create(ctx context.Context, l *domain.Lead) error
}

// txRunner defines the transaction manager interface needed by the workspace
// service.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements workspace operations.
//
// Saved keywords keep a per-user in-memory cache mirroring the remote rows.
// The cache is only updated after the remote write is confirmed, so it can
// answer duplicate-save checks without a round trip but never gets ahead of
// the database.
type Service struct {
	log      *slog.Logger
	keywords savedKeywordRepo
	projects contentProjectRepo
	leads    leadRepo
	tx       txRunner

	mu    sync.Mutex
	cache map[uuid.UUID]map[string]domain.SavedKeyword
}

// NewService creates a new workspace service instance.
func NewService(
	logger *slog.Logger,
	keywords savedKeywordRepo,
	projects contentProjectRepo,
	leads leadRepo,
	tx txRunner,
) *Service {
	return &Service{
		log:      logger.With("service", "workspace"),
		keywords: keywords,
		projects: projects,
		leads:    leads,
		tx:       tx,
		cache:    make(map[uuid.UUID]map[string]domain.SavedKeyword),
	}
}

func (s *Service) cached(userID uuid.UUID, keyword string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cache[userID][keyword]
	return ok
}

func (s *Service) cachePut(userID uuid.UUID, sk domain.SavedKeyword) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache[userID] == nil {
		s.cache[userID] = make(map[string]domain.SavedKeyword)
	}
	s.cache[userID][sk.Result.Keyword] = sk
}

func (s *Service) cacheDrop(userID uuid.UUID, keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache[userID], keyword)
}

func (s *Service) cacheReplace(userID uuid.UUID, rows []domain.SavedKeyword) {
	fresh := make(map[string]domain.SavedKeyword, len(rows))
	for _, sk := range rows {
		fresh[sk.Result.Keyword] = sk
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[userID] = fresh
}
