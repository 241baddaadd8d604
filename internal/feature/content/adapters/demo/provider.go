// Package demo provides the canned content served when no Gemini API
// key is configured. It lets the whole stack run locally with no
// external dependency; every payload is a fixed placeholder.
package demo

import (
	"context"
	"fmt"

	"tutor_backend/internal/feature/content/domain/entity"
	"tutor_backend/internal/feature/content/usecase"
)

// Provider is the fail-open stand-in for the Gemini generator.
type Provider struct{}

// Compile-time check to ensure Provider implements usecase.Provider.
var _ usecase.Provider = (*Provider)(nil)

// NewProvider creates a new demo Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// GenerateSyllabus returns a one-chapter placeholder outline.
func (p *Provider) GenerateSyllabus(_ context.Context, req usecase.SyllabusRequest) (*entity.Syllabus, error) {
	return &entity.Syllabus{
		CourseID: "demo-mode",
		Title:    fmt.Sprintf("Mastering %s (Demo)", req.Topic),
		Chapters: []entity.SyllabusChapter{
			{
				ID:      "chap-1",
				Title:   "Welcome to the Topic",
				Lessons: []string{"Introduction", "Core Concepts"},
			},
		},
	}, nil
}

// GenerateQuiz returns six placeholder questions.
func (p *Provider) GenerateQuiz(_ context.Context, req usecase.LessonPromptRequest) (*entity.Quiz, error) {
	questions := make([]entity.QuizQuestion, 0, 6)
	for i := 0; i < 6; i++ {
		questions = append(questions, entity.QuizQuestion{
			Question:      fmt.Sprintf("Question %d about %s?", i+1, req.LessonTitle),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Explanation:   "This is a demo explanation.",
		})
	}
	return &entity.Quiz{LessonTitle: req.LessonTitle, Questions: questions}, nil
}

// GenerateDiagram returns a fixed flowchart.
func (p *Provider) GenerateDiagram(_ context.Context, req usecase.LessonPromptRequest) (*entity.Diagram, error) {
	return &entity.Diagram{
		LessonTitle: req.LessonTitle,
		MermaidCode: "graph TD\nA[Start] --> B(Process)\nB --> C{Decision}\nC -->|Yes| D[Result 1]\nC -->|No| E[Result 2]",
		Explanation: "This is a demo diagram explaining the process flow.",
	}, nil
}

// GenerateLesson returns placeholder lesson content.
func (p *Provider) GenerateLesson(_ context.Context, req usecase.LessonRequest) (*entity.LessonContent, error) {
	return &entity.LessonContent{
		LessonTitle: req.LessonTitle,
		ContentMarkdown: fmt.Sprintf(
			"# %s\n\nThis is a comprehensive guide to understanding %s. Imagine you are in a high-tech lab...\n\n### Key Concepts\n- Concept 1: Precision\n- Concept 2: Iteration",
			req.LessonTitle, req.LessonTitle),
		MermaidCode: "graph LR\nA[Input] --> B[Processing] --> C[Output]",
		ImagePrompt: fmt.Sprintf(
			"A cinematic wide shot of a futuristic library representing %s, 8k, minimalist dark theme.",
			req.LessonTitle),
		Summary: "You've learned the basics of the topic.",
	}, nil
}

// SuggestCourses returns a fixed set of starter suggestions.
func (p *Provider) SuggestCourses(_ context.Context, _ []string) ([]entity.Suggestion, error) {
	return []entity.Suggestion{
		{Title: "History of Ancient Civilizations", Description: "Explore the rise and fall of great empires"},
		{Title: "Introduction to Data Science", Description: "Learn the fundamentals of data analysis"},
		{Title: "Creative Writing Masterclass", Description: "Develop your storytelling skills"},
	}, nil
}
