package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// SaveKeyword persists a keyword result to the user's workspace. Saving a
// keyword that is already saved is a no-op.
func (s *Service) SaveKeyword(ctx context.Context, userID uuid.UUID, result domain.KeywordResult) (*domain.SavedKeyword, error) {
	if result.Keyword == "" {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "keyword", Message: "required"},
		}}
	}

	if s.cached(userID, result.Keyword) {
		s.log.DebugContext(ctx, "keyword already saved",
			slog.String("keyword", result.Keyword))
		s.mu.Lock()
		sk := s.cache[userID][result.Keyword]
		s.mu.Unlock()
		return &sk, nil
	}

	created, err := s.keywords.Create(ctx, &domain.SavedKeyword{
		ID:        uuid.New(),
		UserID:    userID,
		Result:    result,
		CreatedAt: time.Now(),
	})
	if err != nil {
		// A duplicate row means the cache was cold; absorb it the same way
		// as a cache hit.
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.cachePut(userID, domain.SavedKeyword{UserID: userID, Result: result})
			return &domain.SavedKeyword{UserID: userID, Result: result}, nil
		}
		return nil, fmt.Errorf("workspace.SaveKeyword: %w", err)
	}

	// Cache only after the insert is confirmed.
	s.cachePut(userID, *created)
	return created, nil
}

// RemoveKeyword deletes a saved keyword. The cache entry is dropped only
// after the remote delete succeeds.
func (s *Service) RemoveKeyword(ctx context.Context, userID uuid.UUID, keyword string) error {
	if err := s.keywords.DeleteByKeyword(ctx, userID, keyword); err != nil {
		return fmt.Errorf("workspace.RemoveKeyword: %w", err)
	}
	s.cacheDrop(userID, keyword)
	return nil
}

// FetchKeywords returns all saved keywords from the database, replacing the
// local cache wholesale with what the remote store reports.
func (s *Service) FetchKeywords(ctx context.Context, userID uuid.UUID) ([]domain.SavedKeyword, error) {
	rows, err := s.keywords.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("workspace.FetchKeywords: %w", err)
	}
	s.cacheReplace(userID, rows)
	return rows, nil
}
