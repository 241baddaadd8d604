package entity

// SyllabusChapter is one chapter of a generated syllabus.
type SyllabusChapter struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

// Syllabus is a generated course outline. CourseID is backfilled with
// a fresh UUID when the model does not supply one.
type Syllabus struct {
	CourseID string            `json:"course_id"`
	Title    string            `json:"title"`
	Chapters []SyllabusChapter `json:"chapters"`
}
