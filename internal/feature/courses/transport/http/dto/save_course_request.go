// Package dto defines data transfer objects for the courses feature's HTTP transport layer.
package dto

// ChapterPayload mirrors one syllabus chapter on the wire.
type ChapterPayload struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

// SaveCourseReq represents the request body for /user/save-course.
// Progress is taken as reported by the client; only structural
// validation happens here.
type SaveCourseReq struct {
	CourseID        string           `json:"course_id" binding:"required"`
	Title           string           `json:"title" binding:"required"`
	Topic           string           `json:"topic"`
	Level           string           `json:"level"`
	ProgressPercent int              `json:"progress_percent"`
	Chapters        []ChapterPayload `json:"chapters"`
}
