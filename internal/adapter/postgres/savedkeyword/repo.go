// Package savedkeyword implements the SavedKeyword repository using PostgreSQL.
// Storage column names follow the hosted schema (search_volume, cpc_value, ...);
// the scan/insert mapping is the field-renaming boundary between the storage
// schema and the in-memory entity.
package savedkeyword

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

const table = "saved_keywords"

var columns = []string{
	"id", "user_id", "keyword", "search_volume", "competition_score",
	"cpc_value", "intent_type", "trend_direction", "strategy", "cluster",
	"created_at",
}

// Repo provides saved-keyword persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved-keyword repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByUser returns all saved keywords for a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedKeyword, error) {
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
		return nil, postgres.MapError(err, "saved_keyword", userID)
	}
	defer rows.Close()

	var out []domain.SavedKeyword
	for rows.Next() {
		var sk domain.SavedKeyword
		if err := rows.Scan(
			&sk.ID, &sk.UserID, &sk.Result.Keyword, &sk.Result.SearchVolume,
			&sk.Result.CompetitionScore, &sk.Result.CPCValue, &sk.Result.Intent,
			&sk.Result.Trend, &sk.Result.Strategy, &sk.Result.Cluster,
			&sk.CreatedAt,
		); err != nil {
			return nil, postgres.MapError(err, "saved_keyword", userID)
		}
		out = append(out, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "saved_keyword", userID)
	}
	return out, nil
}

// Create inserts a saved keyword row. The (user_id, keyword) pair is unique;
// a duplicate insert maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, sk *domain.SavedKeyword) (*domain.SavedKeyword, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(sk.ID, sk.UserID, sk.Result.Keyword, sk.Result.SearchVolume,
			sk.Result.CompetitionScore, sk.Result.CPCValue, sk.Result.Intent,
			sk.Result.Trend, sk.Result.Strategy, sk.Result.Cluster,
			sk.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var created domain.SavedKeyword
	if err := q.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.UserID, &created.Result.Keyword, &created.Result.SearchVolume,
		&created.Result.CompetitionScore, &created.Result.CPCValue, &created.Result.Intent,
		&created.Result.Trend, &created.Result.Strategy, &created.Result.Cluster,
		&created.CreatedAt,
	); err != nil {
		return nil, postgres.MapError(err, "saved_keyword", sk.Result.Keyword)
	}
	return &created, nil
}

// DeleteByKeyword removes a user's saved keyword by keyword text.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) DeleteByKeyword(ctx context.Context, userID uuid.UUID, keyword string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"user_id": userID, "keyword": keyword}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "saved_keyword", keyword)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saved_keyword %q: %w", keyword, domain.ErrNotFound)
	}
	return nil
}
