package search

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/history"
)

// History returns the user's search history, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) []domain.SearchHistoryEntry {
	return s.sessions.Get(ctx, userID).History.Entries()
}

// GroupedHistory returns the history partitioned into time buckets relative
// to now.
func (s *Service) GroupedHistory(ctx context.Context, userID uuid.UUID, now time.Time) []history.GroupedHistory {
	entries := s.sessions.Get(ctx, userID).History.Entries()
	return history.GroupByTime(entries, now)
}

// ClearHistory empties the user's search history.
func (s *Service) ClearHistory(ctx context.Context, userID uuid.UUID) {
	s.sessions.Get(ctx, userID).History.Clear(ctx)
}
