// Package handler provides HTTP handlers for the courses feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutor_backend/internal/feature/auth/transport/middleware"
	"tutor_backend/internal/feature/courses/domain/entity"
	"tutor_backend/internal/feature/courses/transport/http/dto"
	"tutor_backend/internal/feature/courses/usecase"
)

// CourseUsecase defines the course progress operations the handler
// depends on. Following Go convention: interfaces are defined by the
// consumer (handler), not the provider (usecase).
type CourseUsecase interface {
	// Save upserts a course for the user.
	Save(ctx context.Context, email string, course *entity.UserCourse) error
	// List returns the user's courses, most recently touched first.
	List(ctx context.Context, email string) ([]*entity.UserCourse, error)
	// Get returns one of the user's courses.
	Get(ctx context.Context, email, courseID string) (*entity.UserCourse, error)
}

// CourseHandler handles HTTP requests for saving and listing course
// progress. All routes sit behind the session middleware, so the
// user's email is always available from the request context.
type CourseHandler struct {
	courses CourseUsecase
}

// NewCourseHandler creates a new instance of CourseHandler.
func NewCourseHandler(courses CourseUsecase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// Save handles POST /user/save-course.
func (h *CourseHandler) Save(c *gin.Context) {
	var req dto.SaveCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("save course validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := middleware.UserEmail(c)
	if err := h.courses.Save(c.Request.Context(), email, courseFromRequest(&req)); err != nil {
		slog.Error("save course failed", "error", err, "email", email, "course_id", req.CourseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "course saved successfully"})
}

// List handles GET /user/courses.
func (h *CourseHandler) List(c *gin.Context) {
	email := middleware.UserEmail(c)
	courses, err := h.courses.List(c.Request.Context(), email)
	if err != nil {
		slog.Error("list courses failed", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load courses"})
		return
	}

	out := dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for _, course := range courses {
		out.Courses = append(out.Courses, courseResponse(course))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /user/course/:id.
func (h *CourseHandler) Get(c *gin.Context) {
	email := middleware.UserEmail(c)
	courseID := c.Param("id")

	course, err := h.courses.Get(c.Request.Context(), email, courseID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, courseResponse(course))
	case errors.Is(err, usecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
	default:
		slog.Error("get course failed", "error", err, "email", email, "course_id", courseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load course"})
	}
}

// courseFromRequest maps the wire payload onto the domain entity.
func courseFromRequest(req *dto.SaveCourseReq) *entity.UserCourse {
	chapters := make([]entity.Chapter, 0, len(req.Chapters))
	for _, ch := range req.Chapters {
		chapters = append(chapters, entity.Chapter{ID: ch.ID, Title: ch.Title, Lessons: ch.Lessons})
	}
	return &entity.UserCourse{
		CourseID:        req.CourseID,
		Title:           req.Title,
		Topic:           req.Topic,
		Level:           req.Level,
		ProgressPercent: req.ProgressPercent,
		Chapters:        chapters,
	}
}

// courseResponse maps the domain entity onto the wire payload.
func courseResponse(course *entity.UserCourse) dto.CourseResponse {
	chapters := make([]dto.ChapterPayload, 0, len(course.Chapters))
	for _, ch := range course.Chapters {
		chapters = append(chapters, dto.ChapterPayload{ID: ch.ID, Title: ch.Title, Lessons: ch.Lessons})
	}
	return dto.CourseResponse{
		CourseID:        course.CourseID,
		Title:           course.Title,
		Topic:           course.Topic,
		Level:           course.Level,
		ProgressPercent: course.ProgressPercent,
		Chapters:        chapters,
		LastAccessed:    course.LastAccessed,
	}
}
