// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "tutor_backend/internal/feature/auth/transport/handler"
	"tutor_backend/internal/feature/auth/transport/middleware"
	contenthandler "tutor_backend/internal/feature/content/transport/handler"
	coursehandler "tutor_backend/internal/feature/courses/transport/handler"
	platformhandler "tutor_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with every route wired to its
// handler. Generation endpoints are public, matching the original
// surface; everything under /user and /auth/me requires a session.
func NewRouter(auth *authhandler.AuthHandler, courses *coursehandler.CourseHandler,
	content *contenthandler.ContentHandler, resolver middleware.SessionResolver) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	// Two-step registration, then password login
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/verify", auth.Verify)
	r.POST("/auth/login", auth.Login)
	// Logout is best effort and needs no valid session
	r.POST("/auth/logout", auth.Logout)

	// Content generation (single-shot wrappers around the provider)
	r.POST("/generate-syllabus", content.GenerateSyllabus)
	r.POST("/generate-quiz", content.GenerateQuiz)
	r.POST("/generate-diagram", content.GenerateDiagram)
	r.POST("/generate-lesson", content.GenerateLesson)

	// Session-scoped routes
	authed := r.Group("/")
	authed.Use(middleware.AuthRequired(resolver))
	{
		authed.GET("/auth/me", auth.Me)
		authed.POST("/user/save-course", courses.Save)
		authed.GET("/user/courses", courses.List)
		authed.GET("/user/course/:id", courses.Get)
		authed.GET("/user/suggestions", content.Suggestions)
	}

	return r
}
