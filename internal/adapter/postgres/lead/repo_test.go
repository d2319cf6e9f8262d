package lead

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranklens/ranklens-backend/internal/adapter/postgres/testhelper"
	"github.com/ranklens/ranklens-backend/internal/domain"
)

func lead(email, source string) *domain.Lead {
	return &domain.Lead{
		ID:        uuid.New(),
		Email:     email,
		Source:    source,
		CreatedAt: time.Now(),
	}
}

func TestRepo_Create(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, lead("lead-one@example.com", "pricing_page")))

	err := repo.Create(ctx, lead("lead-one@example.com", "exit_intent"))
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_CountBySource(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, lead("count-a@example.com", "pricing_page")))
	require.NoError(t, repo.Create(ctx, lead("count-b@example.com", "pricing_page")))
	require.NoError(t, repo.Create(ctx, lead("count-c@example.com", "exit_intent")))

	counts, err := repo.CountBySource(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, counts["pricing_page"], 2)
	assert.GreaterOrEqual(t, counts["exit_intent"], 1)
}
