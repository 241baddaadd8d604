package usecase

import (
	"context"

	"tutor_backend/internal/feature/content/domain/entity"
)

// SyllabusRequest carries the intake answers a syllabus is built from.
type SyllabusRequest struct {
	Topic        string
	Level        string
	DailyMinutes int
}

// LessonPromptRequest identifies a lesson within its course context
// for quiz and diagram generation.
type LessonPromptRequest struct {
	LessonTitle string
	Topic       string
	Level       string
}

// LessonRequest identifies a lesson for full content generation.
// CourseID may be empty, in which case the cache is bypassed.
type LessonRequest struct {
	CourseID    string
	LessonTitle string
	Topic       string
	Level       string
}

// Provider is the generative-content collaborator. Implementations
// are single-shot request/response wrappers with no internal state;
// the unconfigured implementation fails open to canned payloads.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type Provider interface {
	GenerateSyllabus(ctx context.Context, req SyllabusRequest) (*entity.Syllabus, error)
	GenerateQuiz(ctx context.Context, req LessonPromptRequest) (*entity.Quiz, error)
	GenerateDiagram(ctx context.Context, req LessonPromptRequest) (*entity.Diagram, error)
	GenerateLesson(ctx context.Context, req LessonRequest) (*entity.LessonContent, error)
	SuggestCourses(ctx context.Context, topics []string) ([]entity.Suggestion, error)
}
