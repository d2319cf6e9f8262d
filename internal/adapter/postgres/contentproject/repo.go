// Package contentproject implements the ContentProject repository using PostgreSQL.
package contentproject

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ranklens/ranklens-backend/internal/adapter/postgres"
	"github.com/ranklens/ranklens-backend/internal/domain"
)

const table = "content_projects"

var columns = []string{
	"id", "user_id", "title", "keyword", "body", "status",
	"created_at", "updated_at",
}

// Repo provides content-project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content-project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a project by primary key, scoped to the owning user.
func (r *Repo) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.ContentProject, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var p domain.ContentProject
	if err := scan(q.QueryRow(ctx, sql, args...), &p); err != nil {
		return nil, postgres.MapError(err, "content_project", projectID)
	}
	return &p, nil
}

// ListByUser returns all projects for a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentProject, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "content_project", userID)
	}
	defer rows.Close()

	var out []domain.ContentProject
	for rows.Next() {
		var p domain.ContentProject
		if err := scan(rows, &p); err != nil {
			return nil, postgres.MapError(err, "content_project", userID)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "content_project", userID)
	}
	return out, nil
}

// Create inserts a project row and returns the persisted entity.
func (r *Repo) Create(ctx context.Context, p *domain.ContentProject) (*domain.ContentProject, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.UserID, p.Title, p.Keyword, p.Body, p.Status,
			p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var created domain.ContentProject
	if err := scan(q.QueryRow(ctx, sql, args...), &created); err != nil {
		return nil, postgres.MapError(err, "content_project", p.ID)
	}
	return &created, nil
}

// UpdateStatus moves a project to a new lifecycle status.
func (r *Repo) UpdateStatus(ctx context.Context, userID, projectID uuid.UUID, status domain.ProjectStatus) (*domain.ContentProject, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var p domain.ContentProject
	if err := scan(q.QueryRow(ctx, sql, args...), &p); err != nil {
		return nil, postgres.MapError(err, "content_project", projectID)
	}
	return &p, nil
}

// Delete removes a project. Returns domain.ErrNotFound if the project does
// not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "content_project", projectID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_project %s: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

func scan(row interface{ Scan(...any) error }, p *domain.ContentProject) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Keyword, &p.Body, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
}
