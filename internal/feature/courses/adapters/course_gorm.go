package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tutor_backend/internal/feature/courses/domain/entity"
	"tutor_backend/internal/feature/courses/usecase"
)

// courseGorm is the relational implementation of the CourseRepository
// interface.
type courseGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure courseGorm implements CourseRepository.
var _ usecase.CourseRepository = (*courseGorm)(nil)

// NewCourseGorm creates a new instance of courseGorm.
func NewCourseGorm(db *gorm.DB) *courseGorm {
	return &courseGorm{db: db}
}

// Upsert replaces the (email, course) row. On a key conflict every
// content column and the access timestamp are refreshed in place, so
// exactly one row exists per pair afterwards.
func (r *courseGorm) Upsert(ctx context.Context, email string, c *entity.UserCourse) error {
	model, err := CourseModelFromEntity(email, c)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_email"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "topic", "level", "progress_percent", "chapters_json", "last_accessed",
		}),
	}).Create(model).Error
}

// ListByEmail returns all of a user's courses, most recently accessed
// first.
func (r *courseGorm) ListByEmail(ctx context.Context, email string) ([]*entity.UserCourse, error) {
	var models []CourseModel
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("last_accessed DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	courses := make([]*entity.UserCourse, 0, len(models))
	for i := range models {
		course, err := models[i].ToEntity()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// FindByID returns one of a user's courses.
// Returns usecase.ErrCourseNotFound when no row exists.
func (r *courseGorm) FindByID(ctx context.Context, email, courseID string) (*entity.UserCourse, error) {
	var model CourseModel
	if err := r.db.WithContext(ctx).
		Where("user_email = ? AND course_id = ?", email, courseID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCourseNotFound
		}
		return nil, err
	}
	return model.ToEntity()
}
