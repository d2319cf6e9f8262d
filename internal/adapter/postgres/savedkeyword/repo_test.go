package savedkeyword

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profilerepo "github.com/ranklens/ranklens-backend/internal/adapter/postgres/profile"
	"github.com/ranklens/ranklens-backend/internal/adapter/postgres/testhelper"
	"github.com/ranklens/ranklens-backend/internal/domain"
)

func createProfile(t *testing.T, pool *pgxpool.Pool, email string) uuid.UUID {
	t.Helper()
	p, err := profilerepo.New(pool).Create(context.Background(), domain.NewProfile(email, "hash"))
	require.NoError(t, err)
	return p.ID
}

func saved(userID uuid.UUID, keyword string) *domain.SavedKeyword {
	cluster := "Tooling"
	return &domain.SavedKeyword{
		ID:     uuid.New(),
		UserID: userID,
		Result: domain.KeywordResult{
			Keyword:          keyword,
			SearchVolume:     1200,
			CompetitionScore: 55,
			CPCValue:         1.25,
			Intent:           domain.IntentCommercial,
			Trend:            domain.TrendUp,
			Cluster:          &cluster,
		},
		CreatedAt: time.Now(),
	}
}

func TestRepo_CreateAndList(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()
	userID := createProfile(t, pool, "sk-list@example.com")

	older := saved(userID, "first keyword")
	older.CreatedAt = time.Now().Add(-time.Hour)
	_, err := repo.Create(ctx, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, saved(userID, "second keyword"))
	require.NoError(t, err)

	rows, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "second keyword", rows[0].Result.Keyword, "newest first")
	assert.Equal(t, domain.IntentCommercial, rows[0].Result.Intent)
	require.NotNil(t, rows[0].Result.Cluster)
	assert.Equal(t, "Tooling", *rows[0].Result.Cluster)
}

func TestRepo_DuplicateKeyword(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()
	userID := createProfile(t, pool, "sk-dup@example.com")

	_, err := repo.Create(ctx, saved(userID, "same"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, saved(userID, "same"))
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_DeleteByKeyword(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()
	userID := createProfile(t, pool, "sk-del@example.com")

	_, err := repo.Create(ctx, saved(userID, "doomed"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByKeyword(ctx, userID, "doomed"))

	rows, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	err = repo.DeleteByKeyword(ctx, userID, "doomed")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_ScopedByUser(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()
	alice := createProfile(t, pool, "sk-alice@example.com")
	bob := createProfile(t, pool, "sk-bob@example.com")

	_, err := repo.Create(ctx, saved(alice, "alice keyword"))
	require.NoError(t, err)

	rows, err := repo.ListByUser(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, rows)

	err = repo.DeleteByKeyword(ctx, bob, "alice keyword")
	require.ErrorIs(t, err, domain.ErrNotFound, "cannot delete another user's row")
}
