// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tutor_backend/internal/feature/content/domain/entity"
	"tutor_backend/internal/feature/content/usecase"
)

// CachingLessonRepository decorates a LessonRepository with Redis
// caching. The durable store remains the source of truth; Redis only
// short-circuits repeat reads of the same lesson, and every path
// degrades to the inner repository when the client is nil.
type CachingLessonRepository struct {
	inner     usecase.LessonRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator implements LessonRepository.
var _ usecase.LessonRepository = (*CachingLessonRepository)(nil)

// NewCachingLessonRepository decorates a LessonRepository with Redis
// caching. If ttl is 0, it defaults to 1 hour. If namespace is empty,
// it uses "lessons".
func NewCachingLessonRepository(rdb *redis.Client, ttl time.Duration, inner usecase.LessonRepository, namespace string) *CachingLessonRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "lessons"
	}
	return &CachingLessonRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Find retrieves a lesson, checking Redis first then falling back to
// the durable store. Misses are not negatively cached.
func (c *CachingLessonRepository) Find(ctx context.Context, courseID, lessonTitle string) (*entity.CachedLesson, error) {
	if c.rdb == nil {
		return c.inner.Find(ctx, courseID, lessonTitle)
	}

	key := c.cacheKey(courseID, lessonTitle)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.CachedLesson
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the durable store
	out, err := c.inner.Find(ctx, courseID, lessonTitle)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Upsert writes to the durable store and invalidates the cached entry
// so the next read observes the refreshed content.
func (c *CachingLessonRepository) Upsert(ctx context.Context, l *entity.CachedLesson) error {
	if err := c.inner.Upsert(ctx, l); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a failed invalidation only delays the refresh by
	// one TTL.
	_ = c.rdb.Del(ctx, c.cacheKey(l.CourseID, l.LessonTitle)).Err()
	return nil
}

// cacheKey generates the Redis key for one lesson.
func (c *CachingLessonRepository) cacheKey(courseID, lessonTitle string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(courseID), safe(lessonTitle))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
