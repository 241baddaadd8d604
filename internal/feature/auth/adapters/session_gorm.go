package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tutor_backend/internal/feature/auth/domain/entity"
	"tutor_backend/internal/feature/auth/usecase"
)

// sessionGorm is the relational implementation of the SessionRepository
// interface.
type sessionGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionGorm implements SessionRepository.
var _ usecase.SessionRepository = (*sessionGorm)(nil)

// NewSessionGorm creates a new instance of sessionGorm.
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Create persists a freshly minted session.
func (r *sessionGorm) Create(ctx context.Context, s *entity.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindByToken retrieves a session by its bearer token.
// Returns usecase.ErrNotAuthenticated when no row exists.
func (r *sessionGorm) FindByToken(ctx context.Context, tok string) (*entity.Session, error) {
	var s entity.Session
	if err := r.db.WithContext(ctx).Where("token = ?", tok).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotAuthenticated
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a session and reports whether a row existed.
func (r *sessionGorm) Delete(ctx context.Context, tok string) (bool, error) {
	result := r.db.WithContext(ctx).Where("token = ?", tok).Delete(&entity.Session{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
