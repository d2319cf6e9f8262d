package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/localstate"
	"github.com/ranklens/ranklens-backend/internal/metrics"
)

// Search runs one keyword search for the user.
//
// Credits are checked before any work and debited only after generation
// succeeds, so a failed search never costs anything. The result set is stored
// under a generation counter; if a younger search finished while this one was
// in flight, the stale set is discarded (history still records it).
func (s *Service) Search(ctx context.Context, userID uuid.UUID, input SearchInput) (*SearchResult, error) {
	input.Query = domain.NormalizeQuery(input.Query)
	if input.Mode == "" {
		input.Mode = domain.SearchModeWeb
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess := s.sessions.Get(ctx, userID)

	// Fail fast with no mutation when the balance cannot cover the search.
	if sess.Ledger.Balance() < s.cost {
		s.metrics.SearchesTotal.WithLabelValues(input.Mode.String(), metrics.OutcomeRejected).Inc()
		return nil, domain.ErrInsufficientCredits
	}

	gen := sess.nextGeneration()

	start := time.Now()
	results, err := s.gen.Generate(ctx, input.Query, input.Mode)
	s.metrics.GenerationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.SearchesTotal.WithLabelValues(input.Mode.String(), metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("search.Search generate: %w", err)
	}

	// The up-front check is advisory; a concurrent search may have spent the
	// last credit while this one was generating.
	if !sess.Ledger.Debit(ctx, s.cost) {
		s.metrics.SearchesTotal.WithLabelValues(input.Mode.String(), metrics.OutcomeRejected).Inc()
		return nil, domain.ErrInsufficientCredits
	}
	s.metrics.CreditsSpent.Add(float64(s.cost))

	if err := s.sessions.snapshots.Put(ctx, userID, localstate.KeyLastQuery, []byte(input.Query)); err != nil {
		s.log.WarnContext(ctx, "last query snapshot failed", slog.String("error", err.Error()))
	}

	now := time.Now()
	sess.History.Append(ctx, domain.SearchHistoryEntry{
		Query:       input.Query,
		Mode:        input.Mode,
		Timestamp:   now.UnixMilli(),
		ResultCount: len(results),
		Results:     results,
	})

	fallback := isFallback(results)
	stored := sess.storeResults(&domain.ResultSet{
		Generation: gen,
		Results:    results,
		Fallback:   fallback,
		CreatedAt:  now,
	})
	if !stored {
		s.log.DebugContext(ctx, "discarded stale result set",
			slog.String("query", input.Query),
			slog.Uint64("generation", gen))
	}

	outcome := metrics.OutcomeOK
	if fallback {
		outcome = metrics.OutcomeFallback
		s.metrics.FallbacksTotal.Inc()
	}
	s.metrics.SearchesTotal.WithLabelValues(input.Mode.String(), outcome).Inc()

	s.log.InfoContext(ctx, "search completed",
		slog.String("user_id", userID.String()),
		slog.String("mode", input.Mode.String()),
		slog.Int("results", len(results)),
		slog.Bool("fallback", fallback))

	return &SearchResult{
		Results:    results,
		Fallback:   fallback,
		Generation: gen,
		Balance:    sess.Ledger.Balance(),
	}, nil
}

// isFallback reports whether the set came from the canned substitute payload.
// The generator marks every record, so checking one is enough.
func isFallback(results []domain.KeywordResult) bool {
	return len(results) > 0 && results[0].Fallback
}
