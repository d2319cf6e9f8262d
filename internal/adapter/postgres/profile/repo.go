// Package profile implements the Profile repository using PostgreSQL.
// It also serves as the remote mirror for the in-process credit ledger.
package profile

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

const table = "profiles"

var columns = []string{
	"id", "email", "password_hash", "credits", "plan",
	"language", "live_mode", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	p, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return p, nil
}

// GetByEmail returns a profile by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	p, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", email)
	}
	return p, nil
}

// Create inserts a new profile and returns the persisted domain.Profile.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.Email, p.PasswordHash, p.Credits, p.Plan,
			p.Language, p.LiveMode, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.Email)
	}
	return created, nil
}

// UpdateSettings overwrites language and live_mode for the given profile.
func (r *Repo) UpdateSettings(ctx context.Context, id uuid.UUID, language string, liveMode bool) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("language", language).
		Set("live_mode", liveMode).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	p, err := scanProfile(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return p, nil
}

// SetCredits overwrites the stored credit balance. Used by the ledger mirror.
func (r *Repo) SetCredits(ctx context.Context, id uuid.UUID, credits int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("credits", credits).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetCredits returns the stored credit balance. Used by ledger reconciliation.
func (r *Repo) GetCredits(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("credits").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build select: %w", err)
	}

	var credits int
	if err := q.QueryRow(ctx, sql, args...).Scan(&credits); err != nil {
		return 0, postgres.MapError(err, "profile", id)
	}
	return credits, nil
}

func scanProfile(row interface{ Scan(...any) error }) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.Credits, &p.Plan,
		&p.Language, &p.LiveMode, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
