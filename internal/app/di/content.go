// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contentadapters "tutor_backend/internal/feature/content/adapters"
	"tutor_backend/internal/feature/content/adapters/demo"
	"tutor_backend/internal/feature/content/adapters/gemini"
	"tutor_backend/internal/feature/content/usecase"
	"tutor_backend/internal/platform/cache"
	"tutor_backend/internal/platform/config"
	infrahttp "tutor_backend/internal/platform/http"
	"tutor_backend/internal/shared/ratelimiter"
)

// NewContentProvider creates the generative-content provider. With an
// API key it talks to Gemini behind a bounded HTTP client and an
// outbound rate limiter; without one it fails open to canned demo
// content so the stack still runs locally.
func NewContentProvider(ctx context.Context, cfg config.GeminiConfig) (usecase.Provider, error) {
	if cfg.APIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set, serving demo content")
		return demo.NewProvider(), nil
	}

	var limiter ratelimiter.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.RatePerMinute, time.Minute)
	}

	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return gemini.NewGenerator(ctx, cfg.APIKey, cfg.Model, httpClient, limiter)
}

// NewLessonRepository creates the lesson cache. The gorm repository
// is always the durable source of truth; when Redis is available it
// is wrapped with the read-through decorator.
func NewLessonRepository(rdb *redisv9.Client, db *gorm.DB, ttl time.Duration) usecase.LessonRepository {
	repo := contentadapters.NewLessonGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingLessonRepository(rdb, ttl, repo, "lessons")
}
