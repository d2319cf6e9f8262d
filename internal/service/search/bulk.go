package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/metrics"
)

// BulkSearch runs one search per non-empty input line.
//
// The full price (one credit per line) must be available up front or the
// request is rejected without any work. Lines are processed sequentially;
// a line that fails is logged and skipped, and only succeeded lines are
// debited. The returned results are the union across lines, deduplicated by
// keyword with the last occurrence winning.
func (s *Service) BulkSearch(ctx context.Context, userID uuid.UUID, input BulkInput) (*BulkResult, error) {
	if input.Mode == "" {
		input.Mode = domain.SearchModeWeb
	}
	lines := domain.SplitBulkLines(input.Raw)
	if err := input.validateLines(lines); err != nil {
		return nil, err
	}

	sess := s.sessions.Get(ctx, userID)

	total := len(lines) * s.cost
	if sess.Ledger.Balance() < total {
		s.metrics.SearchesTotal.WithLabelValues(input.Mode.String(), metrics.OutcomeRejected).Inc()
		return nil, domain.ErrInsufficientCredits
	}

	gen := sess.nextGeneration()

	var (
		union     []domain.KeywordResult
		byKeyword = map[string]int{}
		succeeded int
	)

	for _, line := range lines {
		start := time.Now()
		results, err := s.gen.Generate(ctx, line, input.Mode)
		s.metrics.GenerationSeconds.Observe(time.Since(start).Seconds())
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("search.BulkSearch generate: %w", err)
			}
			s.metrics.SearchesTotal.WithLabelValues(input.Mode.String(), metrics.OutcomeError).Inc()
			s.log.WarnContext(ctx, "bulk line failed, skipping",
				slog.String("query", line),
				slog.String("error", err.Error()))
			continue
		}

		if !sess.Ledger.Debit(ctx, s.cost) {
			// A concurrent search drained the balance mid-run. Keep what
			// already succeeded.
			s.log.WarnContext(ctx, "bulk run stopped, credits exhausted",
				slog.Int("completed", succeeded),
				slog.Int("requested", len(lines)))
			break
		}
		s.metrics.CreditsSpent.Add(float64(s.cost))
		succeeded++

		sess.History.Append(ctx, domain.SearchHistoryEntry{
			Query:       line,
			Mode:        input.Mode,
			Timestamp:   time.Now().UnixMilli(),
			ResultCount: len(results),
			Results:     results,
		})

		fallback := isFallback(results)
		outcome := metrics.OutcomeOK
		if fallback {
			outcome = metrics.OutcomeFallback
			s.metrics.FallbacksTotal.Inc()
		}
		s.metrics.SearchesTotal.WithLabelValues(input.Mode.String(), outcome).Inc()

		for _, r := range results {
			if i, ok := byKeyword[r.Keyword]; ok {
				union[i] = r
				continue
			}
			byKeyword[r.Keyword] = len(union)
			union = append(union, r)
		}
	}

	sess.storeResults(&domain.ResultSet{
		Generation: gen,
		Results:    union,
		Fallback:   isFallback(union),
		CreatedAt:  time.Now(),
	})

	s.log.InfoContext(ctx, "bulk search completed",
		slog.String("user_id", userID.String()),
		slog.Int("requested", len(lines)),
		slog.Int("succeeded", succeeded),
		slog.Int("results", len(union)))

	return &BulkResult{
		Results:   union,
		Requested: len(lines),
		Succeeded: succeeded,
		Balance:   sess.Ledger.Balance(),
	}, nil
}
