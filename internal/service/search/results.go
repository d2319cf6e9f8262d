package search

import (
	"context"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/cluster"
	"github.com/ranklens/ranklens-backend/internal/domain"
)

// Current returns the user's latest result set, or nil if no search has
// completed this session.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) *domain.ResultSet {
	return s.sessions.Get(ctx, userID).Current()
}

// ClusteredResults groups the current result set by topical cluster, or by
// intent when byIntent is set. Returns nil when there is no current set.
func (s *Service) ClusteredResults(ctx context.Context, userID uuid.UUID, byIntent bool) []cluster.Group {
	rs := s.sessions.Get(ctx, userID).Current()
	if rs == nil {
		return nil
	}
	keyFn := cluster.ByCluster
	if byIntent {
		keyFn = cluster.ByIntent
	}
	return cluster.GroupBy(rs.Results, keyFn)
}
