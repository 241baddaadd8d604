package dto

import "time"

// CourseResponse is the wire shape of one saved course.
type CourseResponse struct {
	CourseID        string           `json:"course_id"`
	Title           string           `json:"title"`
	Topic           string           `json:"topic"`
	Level           string           `json:"level"`
	ProgressPercent int              `json:"progress_percent"`
	Chapters        []ChapterPayload `json:"chapters"`
	LastAccessed    time.Time        `json:"last_accessed"`
}

// CourseListResponse wraps the dashboard listing.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}
