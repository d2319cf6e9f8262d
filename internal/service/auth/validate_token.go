package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// ValidateToken validates a bearer token and returns the authenticated user ID.
// Used by HTTP middleware; any failure maps to ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
