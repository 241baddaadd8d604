// Package handler provides HTTP handlers for the content feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutor_backend/internal/feature/auth/transport/middleware"
	"tutor_backend/internal/feature/content/domain/entity"
	"tutor_backend/internal/feature/content/transport/http/dto"
	"tutor_backend/internal/feature/content/usecase"
)

// ContentUsecase defines the generation operations the handler
// depends on. Following Go convention: interfaces are defined by the
// consumer (handler), not the provider (usecase).
type ContentUsecase interface {
	GenerateSyllabus(ctx context.Context, req usecase.SyllabusRequest) (*entity.Syllabus, error)
	GenerateQuiz(ctx context.Context, req usecase.LessonPromptRequest) (*entity.Quiz, error)
	GenerateDiagram(ctx context.Context, req usecase.LessonPromptRequest) (*entity.Diagram, error)
	GenerateLesson(ctx context.Context, req usecase.LessonRequest) (*entity.LessonContent, error)
	SuggestCourses(ctx context.Context, email string) ([]entity.Suggestion, error)
}

// ContentHandler handles HTTP requests for content generation and
// course suggestions.
type ContentHandler struct {
	content ContentUsecase
}

// NewContentHandler creates a new instance of ContentHandler.
func NewContentHandler(content ContentUsecase) *ContentHandler {
	return &ContentHandler{content: content}
}

// GenerateSyllabus handles POST /generate-syllabus.
func (h *ContentHandler) GenerateSyllabus(c *gin.Context) {
	var req dto.SyllabusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	syllabus, err := h.content.GenerateSyllabus(c.Request.Context(), usecase.SyllabusRequest{
		Topic:        req.Topic,
		Level:        req.Level,
		DailyMinutes: req.DailyMinutes,
	})
	if err != nil {
		slog.Error("syllabus generation failed", "error", err, "topic", req.Topic)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate syllabus"})
		return
	}
	c.JSON(http.StatusOK, syllabus)
}

// GenerateQuiz handles POST /generate-quiz.
func (h *ContentHandler) GenerateQuiz(c *gin.Context) {
	var req dto.QuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.content.GenerateQuiz(c.Request.Context(), usecase.LessonPromptRequest{
		LessonTitle: req.LessonTitle,
		Topic:       req.Topic,
		Level:       req.Level,
	})
	if err != nil {
		slog.Error("quiz generation failed", "error", err, "lesson_title", req.LessonTitle)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate quiz"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GenerateDiagram handles POST /generate-diagram.
func (h *ContentHandler) GenerateDiagram(c *gin.Context) {
	var req dto.DiagramReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	diagram, err := h.content.GenerateDiagram(c.Request.Context(), usecase.LessonPromptRequest{
		LessonTitle: req.LessonTitle,
		Topic:       req.Topic,
		Level:       req.Level,
	})
	if err != nil {
		slog.Error("diagram generation failed", "error", err, "lesson_title", req.LessonTitle)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate diagram"})
		return
	}
	c.JSON(http.StatusOK, diagram)
}

// GenerateLesson handles POST /generate-lesson, serving through the
// lesson cache when a course ID accompanies the request.
func (h *ContentHandler) GenerateLesson(c *gin.Context) {
	var req dto.LessonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.content.GenerateLesson(c.Request.Context(), usecase.LessonRequest{
		CourseID:    req.CourseID,
		LessonTitle: req.LessonTitle,
		Topic:       req.Topic,
		Level:       req.Level,
	})
	if err != nil {
		slog.Error("lesson generation failed", "error", err, "lesson_title", req.LessonTitle)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate lesson"})
		return
	}
	c.JSON(http.StatusOK, dto.LessonResponse{
		LessonTitle:     lesson.LessonTitle,
		ContentMarkdown: lesson.ContentMarkdown,
		MermaidCode:     lesson.MermaidCode,
		ImagePrompt:     lesson.ImagePrompt,
		Summary:         lesson.Summary,
	})
}

// Suggestions handles GET /user/suggestions on the authenticated group.
func (h *ContentHandler) Suggestions(c *gin.Context) {
	email := middleware.UserEmail(c)
	suggestions, err := h.content.SuggestCourses(c.Request.Context(), email)
	if err != nil {
		slog.Error("suggestions failed", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load suggestions"})
		return
	}

	out := dto.SuggestionsResponse{Suggestions: make([]dto.SuggestionItem, 0, len(suggestions))}
	for _, s := range suggestions {
		out.Suggestions = append(out.Suggestions, dto.SuggestionItem{Title: s.Title, Description: s.Description})
	}
	c.JSON(http.StatusOK, out)
}
