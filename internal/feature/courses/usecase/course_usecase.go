package usecase

import (
	"context"
	"fmt"
	"time"

	"tutor_backend/internal/feature/courses/domain/entity"
)

// maxSuggestionTopics bounds how much learning history feeds the
// suggestion prompt.
const maxSuggestionTopics = 5

// CourseRepository abstracts persistence of per-user course progress.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type CourseRepository interface {
	// Upsert replaces the (email, course) row, refreshing every
	// content column and the last-accessed timestamp.
	Upsert(ctx context.Context, email string, course *entity.UserCourse) error

	// ListByEmail returns all of a user's courses ordered by
	// last-accessed descending.
	ListByEmail(ctx context.Context, email string) ([]*entity.UserCourse, error)

	// FindByID returns one of a user's courses.
	// Returns ErrCourseNotFound when no row exists.
	FindByID(ctx context.Context, email, courseID string) (*entity.UserCourse, error)
}

// courseUsecase implements course progress tracking. Every operation
// is scoped by the authenticated user's email, so one user can never
// observe another's courses.
type courseUsecase struct {
	courses CourseRepository
}

// NewCourseUsecase creates a new instance of courseUsecase.
func NewCourseUsecase(courses CourseRepository) *courseUsecase {
	return &courseUsecase{courses: courses}
}

// Save upserts a course for the user, stamping the access time.
func (u *courseUsecase) Save(ctx context.Context, email string, course *entity.UserCourse) error {
	course.LastAccessed = time.Now()
	if err := u.courses.Upsert(ctx, email, course); err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}

// List returns the user's courses, most recently touched first.
func (u *courseUsecase) List(ctx context.Context, email string) ([]*entity.UserCourse, error) {
	return u.courses.ListByEmail(ctx, email)
}

// Get returns a single saved course.
func (u *courseUsecase) Get(ctx context.Context, email, courseID string) (*entity.UserCourse, error) {
	return u.courses.FindByID(ctx, email, courseID)
}

// RecentTopics returns the topics of the user's most recently
// accessed courses, newest first, capped for prompt building. A
// course without a topic contributes its title instead.
func (u *courseUsecase) RecentTopics(ctx context.Context, email string) ([]string, error) {
	courses, err := u.courses.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(courses))
	for _, c := range courses {
		topic := c.Topic
		if topic == "" {
			topic = c.Title
		}
		if topic == "" {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == maxSuggestionTopics {
			break
		}
	}
	return topics, nil
}
