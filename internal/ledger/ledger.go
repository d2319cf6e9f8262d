// Package ledger implements the per-user credit ledger.
//
// The ledger is an injectable state object owned by the session registry, not
// a process-wide global. Every mutation is snapshotted to the durable local
// store synchronously and mirrored to the remote profile row asynchronously;
// the remote value is authoritative and Reconcile overwrites the local one.
package ledger

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/localstate"
)

// mirrorTimeout bounds the fire-and-forget remote write.
const mirrorTimeout = 5 * time.Second

type snapshotStore interface {
	Put(ctx context.Context, userID uuid.UUID, key string, value []byte) error
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error)
}

type remoteMirror interface {
	SetCredits(ctx context.Context, userID uuid.UUID, credits int) error
	GetCredits(ctx context.Context, userID uuid.UUID) (int, error)
}

// CreditLedger tracks a single user's credit balance.
// All operations are safe for concurrent use.
type CreditLedger struct {
	mu      sync.Mutex
	userID  uuid.UUID
	credits int
	def     int

	snapshots snapshotStore
	mirror    remoteMirror
	log       *slog.Logger
}

// New creates a ledger for userID, restoring the balance from the local
// snapshot store if one exists, otherwise starting at def.
func New(ctx context.Context, userID uuid.UUID, def int, snapshots snapshotStore, mirror remoteMirror, logger *slog.Logger) *CreditLedger {
	l := &CreditLedger{
		userID:    userID,
		credits:   def,
		def:       def,
		snapshots: snapshots,
		mirror:    mirror,
		log:       logger.With("component", "ledger", "user_id", userID.String()),
	}

	if raw, err := snapshots.Get(ctx, userID, localstate.KeyCredits); err == nil {
		if v, err := strconv.Atoi(string(raw)); err == nil && v >= 0 {
			l.credits = v
		}
	}

	return l
}

// Balance returns the current credit balance.
func (l *CreditLedger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.credits
}

// Debit decrements the balance by amount if sufficient credits are available.
// Returns false with no state change when the balance is short. Insufficient
// balance is a normal outcome, not an error.
func (l *CreditLedger) Debit(ctx context.Context, amount int) bool {
	if amount <= 0 {
		return true
	}

	l.mu.Lock()
	if l.credits < amount {
		l.mu.Unlock()
		return false
	}
	l.credits -= amount
	balance := l.credits
	l.mu.Unlock()

	l.persist(ctx, balance)
	return true
}

// Credit unconditionally increments the balance by amount.
func (l *CreditLedger) Credit(ctx context.Context, amount int) {
	if amount <= 0 {
		return
	}

	l.mu.Lock()
	l.credits += amount
	balance := l.credits
	l.mu.Unlock()

	l.persist(ctx, balance)
}

// SetAbsolute overwrites the balance. Used to reconcile with the remote
// source of truth. Negative values are clamped to zero.
func (l *CreditLedger) SetAbsolute(ctx context.Context, value int) {
	if value < 0 {
		value = 0
	}

	l.mu.Lock()
	l.credits = value
	l.mu.Unlock()

	l.persist(ctx, value)
}

// Reset restores the default balance.
func (l *CreditLedger) Reset(ctx context.Context) {
	l.SetAbsolute(ctx, l.def)
}

// Reconcile pulls the remote balance and overwrites the local value.
// The remote row is authoritative; call once per session on login.
func (l *CreditLedger) Reconcile(ctx context.Context) error {
	remote, err := l.mirror.GetCredits(ctx, l.userID)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.credits = remote
	l.mu.Unlock()

	if err := l.snapshots.Put(ctx, l.userID, localstate.KeyCredits, []byte(strconv.Itoa(remote))); err != nil {
		l.log.Warn("credits snapshot failed", "error", err)
	}
	return nil
}

// persist writes the local snapshot synchronously and mirrors the balance to
// the remote store in the background. Mirror failures are logged, never
// surfaced: the next Reconcile repairs divergence.
func (l *CreditLedger) persist(ctx context.Context, balance int) {
	if err := l.snapshots.Put(ctx, l.userID, localstate.KeyCredits, []byte(strconv.Itoa(balance))); err != nil {
		l.log.Warn("credits snapshot failed", "error", err)
	}

	go func() {
		mctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := l.mirror.SetCredits(mctx, l.userID, balance); err != nil {
			l.log.Warn("credits mirror failed", "balance", balance, "error", err)
		}
	}()
}
