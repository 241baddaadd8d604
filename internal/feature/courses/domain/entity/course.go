// Package entity defines the domain entities for the courses feature.
package entity

import "time"

// Chapter is one unit of a course syllabus: an ordered list of lesson
// titles under a chapter heading.
type Chapter struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

// UserCourse is a course a user has started, together with their
// progress through it. A user holds at most one row per course;
// saving again fully replaces the content fields and refreshes
// LastAccessed.
type UserCourse struct {
	// CourseID is the identifier assigned when the syllabus was
	// generated.
	CourseID string

	Title string
	Topic string
	Level string

	// ProgressPercent is the caller-reported completion (0-100).
	// The value is stored as supplied, not validated.
	ProgressPercent int

	// Chapters is the syllabus structure the progress refers to.
	Chapters []Chapter

	// LastAccessed orders the dashboard: most recently touched first.
	LastAccessed time.Time
}
