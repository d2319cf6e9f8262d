package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// CaptureLeadInput holds parameters for the lead capture operation.
type CaptureLeadInput struct {
	Email  string
	Source string
}

// Validate validates the lead input.
func (i CaptureLeadInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 || !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if i.Source == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CaptureLead records a marketing lead. Capturing the same email twice is a
// silent no-op.
func (s *Service) CaptureLead(ctx context.Context, input CaptureLeadInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.leads.Create(ctx, &domain.Lead{
		ID:        uuid.New(),
		Email:     input.Email,
		Source:    input.Source,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("workspace.CaptureLead: %w", err)
	}

	s.log.InfoContext(ctx, "lead captured", slog.String("source", input.Source))
	return nil
}
