// Package profile implements profile viewing and user settings updates.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by this service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, language string, liveMode bool) (*domain.Profile, error)
}

// prefsStore is the durable local store mirroring last-used settings so they
// survive restarts even when the remote row is unreachable.
type prefsStore interface {
	Put(ctx context.Context, userID uuid.UUID, key string, value []byte) error
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error)
}

// Service implements profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	prefs    prefsStore
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo, prefs prefsStore) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
		prefs:    prefs,
	}
}
