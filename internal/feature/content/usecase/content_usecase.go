package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tutor_backend/internal/feature/content/domain/entity"
)

// LessonRepository abstracts the durable lesson cache.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type LessonRepository interface {
	// Find returns the cached lesson for an exact (course, title) pair.
	// Returns ErrLessonNotFound on a miss; no fuzzy matching.
	Find(ctx context.Context, courseID, lessonTitle string) (*entity.CachedLesson, error)

	// Upsert writes the lesson, replacing the content fields of an
	// existing entry for the same pair.
	Upsert(ctx context.Context, lesson *entity.CachedLesson) error
}

// TopicSource supplies a user's recent learning topics for the
// suggestion prompt.
type TopicSource interface {
	RecentTopics(ctx context.Context, email string) ([]string, error)
}

// fallbackSuggestions is served when a configured provider errors on
// the suggestion call; the dashboard should not break over it.
var fallbackSuggestions = []entity.Suggestion{
	{Title: "History of Ancient Civilizations", Description: "Explore the rise and fall of great empires"},
	{Title: "Introduction to Data Science", Description: "Learn the fundamentals of data analysis"},
	{Title: "Creative Writing Masterclass", Description: "Develop your storytelling skills"},
}

// contentUsecase wires the generative provider to the lesson cache.
type contentUsecase struct {
	lessons  LessonRepository
	provider Provider
	topics   TopicSource
}

// NewContentUsecase creates a new instance of contentUsecase.
func NewContentUsecase(lessons LessonRepository, provider Provider, topics TopicSource) *contentUsecase {
	return &contentUsecase{
		lessons:  lessons,
		provider: provider,
		topics:   topics,
	}
}

// GenerateSyllabus produces a course outline, minting a course ID
// when the model omits one.
func (u *contentUsecase) GenerateSyllabus(ctx context.Context, req SyllabusRequest) (*entity.Syllabus, error) {
	syllabus, err := u.provider.GenerateSyllabus(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("syllabus generation failed: %w", err)
	}
	if syllabus.CourseID == "" {
		syllabus.CourseID = uuid.NewString()
	}
	return syllabus, nil
}

// GenerateQuiz produces a multiple-choice quiz for one lesson.
func (u *contentUsecase) GenerateQuiz(ctx context.Context, req LessonPromptRequest) (*entity.Quiz, error) {
	quiz, err := u.provider.GenerateQuiz(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}
	return quiz, nil
}

// GenerateDiagram produces a Mermaid diagram for one lesson.
func (u *contentUsecase) GenerateDiagram(ctx context.Context, req LessonPromptRequest) (*entity.Diagram, error) {
	diagram, err := u.provider.GenerateDiagram(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("diagram generation failed: %w", err)
	}
	return diagram, nil
}

// GenerateLesson serves lesson content through the cache: a hit
// short-circuits generation entirely, a miss generates and then
// unconditionally caches the result.
//
// Cache hits return empty ImagePrompt and Summary. Those fields are
// generation-only and never persisted; the narrowing is intentional.
func (u *contentUsecase) GenerateLesson(ctx context.Context, req LessonRequest) (*entity.LessonContent, error) {
	if req.CourseID != "" {
		cached, err := u.lessons.Find(ctx, req.CourseID, req.LessonTitle)
		if err == nil {
			slog.Info("lesson served from cache", "course_id", req.CourseID, "lesson_title", req.LessonTitle)
			return &entity.LessonContent{
				LessonTitle:     cached.LessonTitle,
				ContentMarkdown: cached.ContentMarkdown,
				MermaidCode:     cached.MermaidCode,
			}, nil
		}
		if !errors.Is(err, ErrLessonNotFound) {
			return nil, fmt.Errorf("lesson cache lookup failed: %w", err)
		}
	}

	lesson, err := u.provider.GenerateLesson(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation failed: %w", err)
	}

	if req.CourseID != "" {
		entry := &entity.CachedLesson{
			CourseID:        req.CourseID,
			LessonTitle:     req.LessonTitle,
			Topic:           req.Topic,
			Level:           req.Level,
			ContentMarkdown: lesson.ContentMarkdown,
			MermaidCode:     lesson.MermaidCode,
			Explanation:     lesson.Summary,
			CreatedAt:       time.Now(),
		}
		if err := u.lessons.Upsert(ctx, entry); err != nil {
			return nil, fmt.Errorf("lesson cache write failed: %w", err)
		}
		slog.Info("lesson cached", "course_id", req.CourseID, "lesson_title", req.LessonTitle)
	}

	return lesson, nil
}

// SuggestCourses recommends follow-on courses from the user's recent
// topics. Provider failures degrade to a canned list; storage
// failures propagate.
func (u *contentUsecase) SuggestCourses(ctx context.Context, email string) ([]entity.Suggestion, error) {
	topics, err := u.topics.RecentTopics(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load learning history: %w", err)
	}

	suggestions, err := u.provider.SuggestCourses(ctx, topics)
	if err != nil {
		slog.Warn("suggestion generation failed, serving fallback", "error", err, "email", email)
		return fallbackSuggestions, nil
	}
	return suggestions, nil
}
