package profile

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/localstate"
)

// UpdateSettingsInput carries the mutable user settings.
type UpdateSettingsInput struct {
	Language string
	LiveMode bool
}

// Validate validates the settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError
	if i.Language == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	} else if len(i.Language) > 16 {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must be at most 16 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettings writes the settings to the remote profile row and mirrors
// them to the local prefs store. The remote write is authoritative; a failed
// mirror is logged and repaired on the next update.
func (s *Service) UpdateSettings(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.profiles.UpdateSettings(ctx, userID, input.Language, input.LiveMode)
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateSettings: %w", err)
	}

	if err := s.prefs.Put(ctx, userID, localstate.KeyLanguage, []byte(p.Language)); err != nil {
		s.log.WarnContext(ctx, "language pref mirror failed", "error", err)
	}
	if err := s.prefs.Put(ctx, userID, localstate.KeyLiveMode, []byte(strconv.FormatBool(p.LiveMode))); err != nil {
		s.log.WarnContext(ctx, "live mode pref mirror failed", "error", err)
	}

	return p, nil
}
