// Package usecase implements the business logic for the content feature.
package usecase

import "errors"

// ErrLessonNotFound is returned when the lesson cache has no entry
// for a (course, lesson title) pair.
var ErrLessonNotFound = errors.New("lesson not found")
