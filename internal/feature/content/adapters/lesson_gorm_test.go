package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tutor_backend/internal/feature/content/domain/entity"
	"tutor_backend/internal/feature/content/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&LessonModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func sampleLesson(courseID, title, markdown string) *entity.CachedLesson {
	return &entity.CachedLesson{
		CourseID:        courseID,
		LessonTitle:     title,
		Topic:           "golang",
		Level:           "beginner",
		ContentMarkdown: markdown,
		MermaidCode:     "graph TD; A-->B",
		Explanation:     "a short recap",
		CreatedAt:       time.Now(),
	}
}

func TestLessonGorm_FindAndUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewLessonGorm(db)

		require.NoError(t, repo.Upsert(ctx, sampleLesson("course-1", "Goroutines", "# v1")))

		got, err := repo.Find(ctx, "course-1", "Goroutines")
		require.NoError(t, err)
		assert.Equal(t, "# v1", got.ContentMarkdown)
		assert.Equal(t, "a short recap", got.Explanation)
	})

	t.Run("key is exact, no fuzzy matching", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewLessonGorm(db)

		require.NoError(t, repo.Upsert(ctx, sampleLesson("course-1", "Goroutines", "# v1")))

		_, err := repo.Find(ctx, "course-1", "goroutines")
		assert.ErrorIs(t, err, usecase.ErrLessonNotFound, "title casing is part of the key")

		_, err = repo.Find(ctx, "course-2", "Goroutines")
		assert.ErrorIs(t, err, usecase.ErrLessonNotFound, "course scoping is part of the key")
	})

	t.Run("regeneration overwrites instead of duplicating", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewLessonGorm(db)

		require.NoError(t, repo.Upsert(ctx, sampleLesson("course-1", "Goroutines", "# v1")))
		require.NoError(t, repo.Upsert(ctx, sampleLesson("course-1", "Goroutines", "# v2")))

		got, err := repo.Find(ctx, "course-1", "Goroutines")
		require.NoError(t, err)
		assert.Equal(t, "# v2", got.ContentMarkdown)

		var count int64
		db.Model(&LessonModel{}).Count(&count)
		assert.Equal(t, int64(1), count, "one row per (course, title) pair")
	})
}
