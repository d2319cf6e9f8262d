// Package lead implements the marketing-lead repository using PostgreSQL.
package lead

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ranklens/ranklens-backend/internal/adapter/postgres"
	"github.com/ranklens/ranklens-backend/internal/domain"
)

const table = "leads"

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lead repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a lead. Duplicate emails map to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l *domain.Lead) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "email", "source", "created_at").
		Values(l.ID, l.Email, l.Source, l.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "lead", l.Email)
	}
	return nil
}

// CountBySource returns the number of captured leads per source label.
func (r *Repo) CountBySource(ctx context.Context) (map[string]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, _, err := postgres.Builder.
		Select("source", "count(*)").
		From(table).
		GroupBy("source").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, postgres.MapError(err, "lead", "counts")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return nil, postgres.MapError(err, "lead", "counts")
		}
		counts[source] = n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "lead", "counts")
	}
	return counts, nil
}
