// Package usecase implements the business logic for the courses feature.
package usecase

import "errors"

// ErrCourseNotFound is returned when a user has no saved course with
// the requested ID.
var ErrCourseNotFound = errors.New("course not found")
