// Package dto defines data transfer objects for the content feature's HTTP transport layer.
package dto

// SyllabusReq represents the request body for /generate-syllabus.
type SyllabusReq struct {
	Topic        string `json:"topic" binding:"required"`
	Level        string `json:"level" binding:"required"`
	DailyMinutes int    `json:"daily_minutes" binding:"required,min=1"`
}

// QuizReq represents the request body for /generate-quiz.
type QuizReq struct {
	LessonTitle string `json:"lesson_title" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	Level       string `json:"level" binding:"required"`
}

// DiagramReq represents the request body for /generate-diagram.
type DiagramReq struct {
	LessonTitle string `json:"lesson_title" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	Level       string `json:"level" binding:"required"`
}

// LessonReq represents the request body for /generate-lesson.
// CourseID is optional; without it the lesson cache is bypassed.
type LessonReq struct {
	CourseID    string `json:"course_id"`
	LessonTitle string `json:"lesson_title" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	Level       string `json:"level" binding:"required"`
}
