// Package search orchestrates keyword searches: credit gating, generation,
// history recording and the per-user result cache.
package search

import (
	"context"
	"log/slog"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/metrics"
)

// generator produces keyword records for a query.
type generator interface {
	Generate(ctx context.Context, query string, mode domain.SearchMode) ([]domain.KeywordResult, error)
}

// Service implements search operations.
type Service struct {
	log      *slog.Logger
	gen      generator
	sessions *Sessions
	metrics  *metrics.Metrics
	cost     int
}

// NewService creates a new search service instance. cost is the credit price
// of one query.
func NewService(
	logger *slog.Logger,
	gen generator,
	sessions *Sessions,
	m *metrics.Metrics,
	cost int,
) *Service {
	return &Service{
		log:      logger.With("service", "search"),
		gen:      gen,
		sessions: sessions,
		metrics:  m,
		cost:     cost,
	}
}
