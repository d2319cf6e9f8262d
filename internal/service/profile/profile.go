package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/localstate"
)

// View is a profile together with the locally remembered last query.
type View struct {
	Profile   *domain.Profile
	LastQuery string
}

// GetProfile loads the user's profile and the last-used query from the local
// prefs store. A missing last query is not an error.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*View, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.GetProfile: %w", err)
	}

	v := &View{Profile: p}
	if raw, err := s.prefs.Get(ctx, userID, localstate.KeyLastQuery); err == nil {
		v.LastQuery = string(raw)
	}
	return v, nil
}
