// Package adapters provides repository implementations for the content feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tutor_backend/internal/feature/content/domain/entity"
	"tutor_backend/internal/feature/content/usecase"
)

// LessonModel is the GORM model for the lessons table.
type LessonModel struct {
	ID              uint      `gorm:"primaryKey"`
	CourseID        string    `gorm:"uniqueIndex:idx_course_lesson;size:64;not null"`
	LessonTitle     string    `gorm:"uniqueIndex:idx_course_lesson;size:255;not null"`
	Topic           string    `gorm:"size:255;not null"`
	Level           string    `gorm:"size:64;not null"`
	ContentMarkdown string    `gorm:"type:text;not null"`
	MermaidCode     string    `gorm:"type:text"`
	Explanation     string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (LessonModel) TableName() string {
	return "lessons"
}

// ToEntity converts the GORM model to a domain entity.
func (m *LessonModel) ToEntity() *entity.CachedLesson {
	return &entity.CachedLesson{
		CourseID:        m.CourseID,
		LessonTitle:     m.LessonTitle,
		Topic:           m.Topic,
		Level:           m.Level,
		ContentMarkdown: m.ContentMarkdown,
		MermaidCode:     m.MermaidCode,
		Explanation:     m.Explanation,
		CreatedAt:       m.CreatedAt,
	}
}

// LessonModelFromEntity converts a domain entity to a GORM model.
func LessonModelFromEntity(l *entity.CachedLesson) *LessonModel {
	return &LessonModel{
		CourseID:        l.CourseID,
		LessonTitle:     l.LessonTitle,
		Topic:           l.Topic,
		Level:           l.Level,
		ContentMarkdown: l.ContentMarkdown,
		MermaidCode:     l.MermaidCode,
		Explanation:     l.Explanation,
		CreatedAt:       l.CreatedAt,
	}
}

// lessonGorm is the relational implementation of the LessonRepository
// interface: the durable layer of the lesson cache.
type lessonGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure lessonGorm implements LessonRepository.
var _ usecase.LessonRepository = (*lessonGorm)(nil)

// NewLessonGorm creates a new instance of lessonGorm.
func NewLessonGorm(db *gorm.DB) *lessonGorm {
	return &lessonGorm{db: db}
}

// Find returns the cached lesson for an exact (course, title) pair.
// Returns usecase.ErrLessonNotFound on a miss.
func (r *lessonGorm) Find(ctx context.Context, courseID, lessonTitle string) (*entity.CachedLesson, error) {
	var model LessonModel
	if err := r.db.WithContext(ctx).
		Where("course_id = ? AND lesson_title = ?", courseID, lessonTitle).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLessonNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Upsert writes the lesson. A conflict on (course, title) refreshes
// the content columns in place, keeping a single row per pair.
func (r *lessonGorm) Upsert(ctx context.Context, l *entity.CachedLesson) error {
	model := LessonModelFromEntity(l)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "course_id"}, {Name: "lesson_title"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content_markdown", "mermaid_code", "explanation",
		}),
	}).Create(model).Error
}
