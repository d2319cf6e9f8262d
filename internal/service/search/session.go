package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/history"
	"github.com/ranklens/ranklens-backend/internal/ledger"
)

// snapshotStore is the durable local key-value store backing session state.
type snapshotStore interface {
	Put(ctx context.Context, userID uuid.UUID, key string, value []byte) error
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error)
	Delete(ctx context.Context, userID uuid.UUID, key string) error
}

// creditMirror is the remote, authoritative credit balance.
type creditMirror interface {
	SetCredits(ctx context.Context, userID uuid.UUID, credits int) error
	GetCredits(ctx context.Context, userID uuid.UUID) (int, error)
}

// Session bundles one user's in-process state: the credit ledger, the search
// history, and the latest result set tagged with a generation counter.
type Session struct {
	UserID  uuid.UUID
	Ledger  *ledger.CreditLedger
	History *history.Store

	mu      sync.Mutex
	gen     uint64
	current *domain.ResultSet
}

// nextGeneration allocates the generation number for a new search.
func (s *Session) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// storeResults installs rs as the current result set unless a younger search
// already finished, in which case the stale set is discarded.
func (s *Session) storeResults(rs *domain.ResultSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && rs.Generation < s.current.Generation {
		return false
	}
	s.current = rs
	return true
}

// Current returns the latest stored result set, or nil if no search has
// completed yet.
func (s *Session) Current() *domain.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Sessions owns per-user session state, created lazily on first use.
type Sessions struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]*Session

	snapshots      snapshotStore
	mirror         creditMirror
	defaultCredits int
	historyCap     int
	log            *slog.Logger
}

// NewSessions creates the session registry.
func NewSessions(snapshots snapshotStore, mirror creditMirror, defaultCredits, historyCap int, logger *slog.Logger) *Sessions {
	return &Sessions{
		byUser:         make(map[uuid.UUID]*Session),
		snapshots:      snapshots,
		mirror:         mirror,
		defaultCredits: defaultCredits,
		historyCap:     historyCap,
		log:            logger.With("component", "sessions"),
	}
}

// Get returns the session for userID, creating it on first access. Creation
// restores local snapshots and then reconciles the ledger against the remote
// balance; reconcile failure keeps the snapshot value and is repaired on the
// next session.
func (r *Sessions) Get(ctx context.Context, userID uuid.UUID) *Session {
	r.mu.Lock()
	if sess, ok := r.byUser[userID]; ok {
		r.mu.Unlock()
		return sess
	}
	r.mu.Unlock()

	// Built outside the registry lock: restoring snapshots and the remote
	// reconcile do I/O.
	sess := &Session{
		UserID:  userID,
		Ledger:  ledger.New(ctx, userID, r.defaultCredits, r.snapshots, r.mirror, r.log),
		History: history.NewStore(ctx, userID, r.historyCap, r.snapshots, r.log),
	}
	if err := sess.Ledger.Reconcile(ctx); err != nil {
		r.log.WarnContext(ctx, "credit reconcile on session start failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byUser[userID]; ok {
		return existing
	}
	r.byUser[userID] = sess
	return sess
}
