// Package entity defines the domain entities for the content feature.
package entity

import "time"

// LessonContent is a freshly generated lesson payload. ImagePrompt
// and Summary exist only at generation time; the cache never stores
// them, so a cache hit returns them empty.
type LessonContent struct {
	LessonTitle     string
	ContentMarkdown string
	MermaidCode     string
	ImagePrompt     string
	Summary         string
}

// CachedLesson is the durable form of a generated lesson, addressed
// by the (course, lesson title) pair. A later write for the same pair
// refreshes the content fields in place.
type CachedLesson struct {
	CourseID        string
	LessonTitle     string
	Topic           string
	Level           string
	ContentMarkdown string
	MermaidCode     string
	// Explanation stores the generation summary for future reuse.
	Explanation string
	CreatedAt   time.Time
}
