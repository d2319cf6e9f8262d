// Package auth implements email/password registration, login and bearer
// token validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/config"
	"github.com/ranklens/ranklens-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by auth service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, plan string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		profiles: profiles,
		jwt:      jwt,
		cfg:      cfg,
	}
}
