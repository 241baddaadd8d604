// Package gemini provides the Google Gemini implementation of the
// content provider.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"tutor_backend/internal/feature/content/domain/entity"
	"tutor_backend/internal/feature/content/usecase"
	"tutor_backend/internal/shared/ratelimiter"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Generator produces education content through the Gemini API. Every
// call requests a JSON response and decodes it into the domain shape.
type Generator struct {
	client  *genai.Client
	model   string
	limiter ratelimiter.Limiter
}

// Compile-time check to ensure Generator implements Provider.
var _ usecase.Provider = (*Generator)(nil)

// NewGenerator creates a Generator talking to the Gemini API with the
// given key. The HTTP client should carry a bounded timeout; the
// limiter throttles outbound calls and may be nil.
func NewGenerator(ctx context.Context, apiKey, model string, httpClient *http.Client, limiter ratelimiter.Limiter) (*Generator, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Generator{client: client, model: model, limiter: limiter}, nil
}

// GenerateSyllabus asks the model for a structured course outline.
func (g *Generator) GenerateSyllabus(ctx context.Context, req usecase.SyllabusRequest) (*entity.Syllabus, error) {
	prompt := fmt.Sprintf(`Generate a comprehensive and engaging syllabus for a course on '%s'.
The user's experience level is '%s'.
They can commit %d minutes per day.

The syllabus should be structured with interesting chapter titles and creative lesson names that reflect the %s level.

Return the response ONLY in a valid JSON format matching this structure:
{
    "course_id": "unique-id",
    "title": "A Great Course Title",
    "chapters": [
        {
            "id": "chap-1",
            "title": "Chapter Title",
            "lessons": ["Lesson 1 Name", "Lesson 2 Name"]
        }
    ]
}`, req.Topic, req.Level, req.DailyMinutes, req.Level)

	var syllabus entity.Syllabus
	if err := g.generateJSON(ctx, prompt, &syllabus); err != nil {
		return nil, err
	}
	return &syllabus, nil
}

// GenerateQuiz asks the model for exactly six four-option questions.
func (g *Generator) GenerateQuiz(ctx context.Context, req usecase.LessonPromptRequest) (*entity.Quiz, error) {
	prompt := fmt.Sprintf(`Generate exactly 6 multiple choice questions for the lesson '%s'
which is part of a course on '%s' at the '%s' level.
Each question must have exactly 4 options labeled A, B, C, and D.

Return the response ONLY in a valid JSON format matching this structure:
{
    "lesson_title": "%s",
    "questions": [
        {
            "question": "The question text?",
            "options": ["A. First option", "B. Second option", "C. Third option", "D. Fourth option"],
            "correct_answer": "A. First option",
            "explanation": "Brief explanation of why this is correct."
        }
    ]
}`, req.LessonTitle, req.Topic, req.Level, req.LessonTitle)

	var quiz entity.Quiz
	if err := g.generateJSON(ctx, prompt, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GenerateDiagram asks the model for a Mermaid visualization of the
// lesson's core concept.
func (g *Generator) GenerateDiagram(ctx context.Context, req usecase.LessonPromptRequest) (*entity.Diagram, error) {
	prompt := fmt.Sprintf(`Generate a Mermaid.js diagram code that visualizes the core concept of the lesson '%s'
which is part of a course on '%s' at the '%s' level.

The diagram should be clear, educational, and use appropriate Mermaid syntax (graph TD, sequenceDiagram, etc.).

Return the response ONLY in a valid JSON format matching this structure:
{
    "lesson_title": "%s",
    "mermaid_code": "graph TD\n...",
    "explanation": "Brief explanation of what this diagram shows."
}`, req.LessonTitle, req.Topic, req.Level, req.LessonTitle)

	var diagram entity.Diagram
	if err := g.generateJSON(ctx, prompt, &diagram); err != nil {
		return nil, err
	}
	return &diagram, nil
}

// lessonPayload mirrors the JSON the model returns for lesson content.
type lessonPayload struct {
	LessonTitle     string `json:"lesson_title"`
	ContentMarkdown string `json:"content_markdown"`
	MermaidCode     string `json:"mermaid_code"`
	ImagePrompt     string `json:"image_prompt"`
	Summary         string `json:"summary"`
}

// GenerateLesson asks the model for full lesson content: markdown
// guide, mindmap diagram, image prompt and a one-line summary.
func (g *Generator) GenerateLesson(ctx context.Context, req usecase.LessonRequest) (*entity.LessonContent, error) {
	prompt := fmt.Sprintf(`Generate rich lesson content for '%s'
as part of a course on '%s' at the '%s' level.

The content should include:
1. A long, engaging guide in Markdown format.
2. A Mermaid.js MINDMAP diagram (NOT flowchart) that visualizes the main concepts.
   - Use the mindmap syntax with a root node and short branches
   - Keep labels SHORT (max 3-4 words)
   - Maximum 4 main branches, 2-3 leaves per branch
3. A creative DALL-E/Stable Diffusion image prompt that fits the lesson theme.
4. A 1-sentence summary.

Return the response ONLY in a valid JSON format matching this structure:
{
    "lesson_title": "%s",
    "content_markdown": "Markdown string here...",
    "mermaid_code": "mindmap\n  root((Topic))\n    Branch1\n      Leaf1",
    "image_prompt": "Prompt here...",
    "summary": "Summary here."
}`, req.LessonTitle, req.Topic, req.Level, req.LessonTitle)

	var payload lessonPayload
	if err := g.generateJSON(ctx, prompt, &payload); err != nil {
		return nil, err
	}
	return &entity.LessonContent{
		LessonTitle:     payload.LessonTitle,
		ContentMarkdown: payload.ContentMarkdown,
		MermaidCode:     payload.MermaidCode,
		ImagePrompt:     payload.ImagePrompt,
		Summary:         payload.Summary,
	}, nil
}

// suggestionsPayload mirrors the JSON the model returns for
// course suggestions.
type suggestionsPayload struct {
	Suggestions []entity.Suggestion `json:"suggestions"`
}

// SuggestCourses asks the model for three follow-on course ideas
// based on recent learning topics.
func (g *Generator) SuggestCourses(ctx context.Context, topics []string) ([]entity.Suggestion, error) {
	prompt := fmt.Sprintf(`Based on a user who has been learning about: %s

Suggest 3 related but different course topics they might enjoy next.
Each suggestion should be complementary to their interests but expand into new areas.

Return the response ONLY in a valid JSON format matching this structure:
{
    "suggestions": [
        {
            "title": "Course Title",
            "description": "A brief 1-sentence description of what they'll learn"
        }
    ]
}`, strings.Join(topics, ", "))

	var payload suggestionsPayload
	if err := g.generateJSON(ctx, prompt, &payload); err != nil {
		return nil, err
	}
	if len(payload.Suggestions) > 3 {
		payload.Suggestions = payload.Suggestions[:3]
	}
	return payload.Suggestions, nil
}

// generateJSON runs one model call with a JSON response MIME type and
// decodes the result into out.
func (g *Generator) generateJSON(ctx context.Context, prompt string, out any) error {
	if g.limiter != nil {
		g.limiter.WaitIfNeeded()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("gemini API request failed: %w", err)
	}

	if err := json.Unmarshal([]byte(resp.Text()), out); err != nil {
		return fmt.Errorf("gemini returned malformed JSON: %w", err)
	}
	return nil
}
