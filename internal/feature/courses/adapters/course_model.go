// Package adapters provides repository implementations for the courses feature.
package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"tutor_backend/internal/feature/courses/domain/entity"
)

// CourseModel is the GORM model for the user_courses table. Chapters
// travel as a serialized JSON column so the same schema works on both
// backends.
type CourseModel struct {
	ID              uint      `gorm:"primaryKey"`
	UserEmail       string    `gorm:"uniqueIndex:idx_user_course;size:255;not null"`
	CourseID        string    `gorm:"uniqueIndex:idx_user_course;size:64;not null"`
	Title           string    `gorm:"size:255;not null"`
	Topic           string    `gorm:"size:255"`
	Level           string    `gorm:"size:64"`
	ProgressPercent int       `gorm:"not null;default:0"`
	ChaptersJSON    string    `gorm:"type:text"`
	LastAccessed    time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (CourseModel) TableName() string {
	return "user_courses"
}

// ToEntity converts the GORM model to a domain entity, deserializing
// the chapter list.
func (m *CourseModel) ToEntity() (*entity.UserCourse, error) {
	var chapters []entity.Chapter
	if m.ChaptersJSON != "" {
		if err := json.Unmarshal([]byte(m.ChaptersJSON), &chapters); err != nil {
			return nil, fmt.Errorf("failed to decode chapters for course %s: %w", m.CourseID, err)
		}
	}
	return &entity.UserCourse{
		CourseID:        m.CourseID,
		Title:           m.Title,
		Topic:           m.Topic,
		Level:           m.Level,
		ProgressPercent: m.ProgressPercent,
		Chapters:        chapters,
		LastAccessed:    m.LastAccessed,
	}, nil
}

// CourseModelFromEntity converts a domain entity to a GORM model,
// serializing the chapter list.
func CourseModelFromEntity(email string, c *entity.UserCourse) (*CourseModel, error) {
	chapters := c.Chapters
	if chapters == nil {
		chapters = []entity.Chapter{}
	}
	data, err := json.Marshal(chapters)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chapters for course %s: %w", c.CourseID, err)
	}
	return &CourseModel{
		UserEmail:       email,
		CourseID:        c.CourseID,
		Title:           c.Title,
		Topic:           c.Topic,
		Level:           c.Level,
		ProgressPercent: c.ProgressPercent,
		ChaptersJSON:    string(data),
		LastAccessed:    c.LastAccessed,
	}, nil
}
