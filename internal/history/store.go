// Package history implements the capped, deduplicated search history store
// and the time-bucketed grouping consumed by the UI sidebar.
package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/localstate"
)

// DefaultCapacity is the number of entries retained per user.
const DefaultCapacity = 20

type snapshotStore interface {
	Put(ctx context.Context, userID uuid.UUID, key string, value []byte) error
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error)
	Delete(ctx context.Context, userID uuid.UUID, key string) error
}

// Store is a per-user append-only search history, capped and deduplicated by
// (query, mode). Order is recency-of-insertion, newest first. Eviction is by
// insertion order, not timestamp: a caller that backdates timestamps still
// evicts from the tail.
type Store struct {
	mu       sync.Mutex
	userID   uuid.UUID
	capacity int
	entries  []domain.SearchHistoryEntry

	snapshots snapshotStore
	log       *slog.Logger
}

// NewStore creates a history store for userID, restoring persisted entries
// from the local snapshot store. A corrupt snapshot is discarded.
func NewStore(ctx context.Context, userID uuid.UUID, capacity int, snapshots snapshotStore, logger *slog.Logger) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	s := &Store{
		userID:    userID,
		capacity:  capacity,
		snapshots: snapshots,
		log:       logger.With("component", "history", "user_id", userID.String()),
	}

	if raw, err := snapshots.Get(ctx, userID, localstate.KeyHistory); err == nil {
		var restored []domain.SearchHistoryEntry
		if err := json.Unmarshal(raw, &restored); err != nil {
			s.log.Warn("discarding corrupt history snapshot", "error", err)
		} else {
			if len(restored) > capacity {
				restored = restored[:capacity]
			}
			s.entries = restored
		}
	}

	return s
}

// Append removes any existing entry with the same (query, mode) pair, prepends
// the new entry, and truncates to capacity.
func (s *Store) Append(ctx context.Context, entry domain.SearchHistoryEntry) {
	s.mu.Lock()

	key := entry.Key()
	kept := make([]domain.SearchHistoryEntry, 0, len(s.entries)+1)
	kept = append(kept, entry)
	for _, e := range s.entries {
		if e.Key() == key {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > s.capacity {
		kept = kept[:s.capacity]
	}
	s.entries = kept

	snapshot := make([]domain.SearchHistoryEntry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Entries returns a copy of the history, newest first.
func (s *Store) Entries() []domain.SearchHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SearchHistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear empties the store and removes the persisted snapshot.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	if err := s.snapshots.Delete(ctx, s.userID, localstate.KeyHistory); err != nil {
		s.log.Warn("history snapshot delete failed", "error", err)
	}
}

func (s *Store) persist(ctx context.Context, entries []domain.SearchHistoryEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		s.log.Warn("history snapshot marshal failed", "error", err)
		return
	}
	if err := s.snapshots.Put(ctx, s.userID, localstate.KeyHistory, raw); err != nil {
		s.log.Warn("history snapshot write failed", "error", err)
	}
}
