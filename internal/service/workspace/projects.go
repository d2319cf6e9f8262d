package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// CreateProjectInput holds parameters for creating a content project.
type CreateProjectInput struct {
	Title    string
	Keyword  string
	Strategy string // seeds the draft body; may be empty
}

// Validate validates the create-project input.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Keyword == "" {
		errs = append(errs, domain.FieldError{Field: "keyword", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateProject creates a draft content project seeded from a keyword's
// strategy note.
func (s *Service) CreateProject(ctx context.Context, userID uuid.UUID, input CreateProjectInput) (*domain.ContentProject, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body := input.Strategy
	if body == "" {
		body = fmt.Sprintf("Draft content targeting %q.", input.Keyword)
	}

	now := time.Now()
	created, err := s.projects.Create(ctx, &domain.ContentProject{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Keyword:   input.Keyword,
		Body:      body,
		Status:    domain.ProjectStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("workspace.CreateProject: %w", err)
	}

	s.log.InfoContext(ctx, "content project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", created.ID.String()))

	return created, nil
}

// ListProjects returns the user's content projects, newest first.
func (s *Service) ListProjects(ctx context.Context, userID uuid.UUID) ([]domain.ContentProject, error) {
	rows, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("workspace.ListProjects: %w", err)
	}
	return rows, nil
}

// GetProject returns one project by ID, scoped to the user.
func (s *Service) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*domain.ContentProject, error) {
	p, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("workspace.GetProject: %w", err)
	}
	return p, nil
}

// UpdateProjectStatus moves a project to a new lifecycle status. The current
// status is re-read inside the transaction so concurrent updates cannot skip
// a lifecycle step.
func (s *Service) UpdateProjectStatus(ctx context.Context, userID, projectID uuid.UUID, status domain.ProjectStatus) (*domain.ContentProject, error) {
	if !status.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "status", Message: "unknown status"},
		}}
	}

	var updated *domain.ContentProject
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.projects.GetByID(ctx, userID, projectID)
		if err != nil {
			return err
		}
		if current.Status == status {
			updated = current
			return nil
		}
		if !current.Status.CanTransitionTo(status) {
			return &domain.ValidationError{Errors: []domain.FieldError{
				{Field: "status", Message: fmt.Sprintf("cannot move %s project to %s", current.Status, status)},
			}}
		}

		updated, err = s.projects.UpdateStatus(ctx, userID, projectID, status)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("workspace.UpdateProjectStatus: %w", err)
	}

	s.log.InfoContext(ctx, "content project status changed",
		slog.String("project_id", projectID.String()),
		slog.String("status", status.String()))

	return updated, nil
}

// DeleteProject removes a project.
func (s *Service) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	if err := s.projects.Delete(ctx, userID, projectID); err != nil {
		return fmt.Errorf("workspace.DeleteProject: %w", err)
	}
	return nil
}
