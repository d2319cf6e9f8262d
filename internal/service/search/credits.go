package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Credits returns the user's current credit balance.
func (s *Service) Credits(ctx context.Context, userID uuid.UUID) int {
	return s.sessions.Get(ctx, userID).Ledger.Balance()
}

// ReconcileCredits pulls the remote balance and overwrites the local ledger,
// returning the reconciled value.
func (s *Service) ReconcileCredits(ctx context.Context, userID uuid.UUID) (int, error) {
	sess := s.sessions.Get(ctx, userID)
	if err := sess.Ledger.Reconcile(ctx); err != nil {
		return 0, fmt.Errorf("search.ReconcileCredits: %w", err)
	}
	return sess.Ledger.Balance(), nil
}
