package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutor_backend/internal/feature/auth/domain/entity"
	"tutor_backend/internal/feature/auth/usecase"
)

func TestPendingGorm_Upsert(t *testing.T) {
	t.Run("repeated register replaces the staged row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPendingGorm(db)
		ctx := context.Background()

		require.NoError(t, repo.Upsert(ctx, &entity.PendingVerification{
			Email:        "test@example.com",
			Code:         "111111",
			PasswordHash: "hash-1",
			ExpiresAt:    time.Now().Add(10 * time.Minute),
		}))
		require.NoError(t, repo.Upsert(ctx, &entity.PendingVerification{
			Email:        "test@example.com",
			Code:         "222222",
			PasswordHash: "hash-2",
			ExpiresAt:    time.Now().Add(10 * time.Minute),
		}))

		got, err := repo.FindByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "222222", got.Code, "last write must win")
		assert.Equal(t, "hash-2", got.PasswordHash)

		var count int64
		db.Model(&entity.PendingVerification{}).Count(&count)
		assert.Equal(t, int64(1), count, "one staged row per email")
	})
}

func TestPendingGorm_FindByEmail(t *testing.T) {
	t.Run("missing row maps to sentinel", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPendingGorm(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrNoPendingVerification)
	})
}

func TestPendingGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPendingGorm(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.PendingVerification{
		Email:     "test@example.com",
		Code:      "111111",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	require.NoError(t, repo.Delete(ctx, "test@example.com"))

	_, err := repo.FindByEmail(ctx, "test@example.com")
	assert.ErrorIs(t, err, usecase.ErrNoPendingVerification)

	// Deleting an absent row is not an error.
	assert.NoError(t, repo.Delete(ctx, "test@example.com"))
}
