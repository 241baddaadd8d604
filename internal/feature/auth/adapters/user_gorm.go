// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tutor_backend/internal/feature/auth/domain/entity"
	"tutor_backend/internal/feature/auth/usecase"
)

// userGorm is the relational implementation of the UserRepository
// interface. The same code serves PostgreSQL and embedded SQLite; the
// dialect is decided once at startup when the gorm.DB is opened.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// FindByEmail retrieves the account for an email.
// Returns usecase.ErrNoSuchAccount when no row exists.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoSuchAccount
		}
		return nil, err
	}
	return &u, nil
}

// Upsert inserts the account, or on an email conflict refreshes the
// password hash and verified flag in place. The conflict path keeps
// the row's original ID and creation time. Single-row upsert is the
// atomicity boundary for concurrent verifications of the same email.
func (r *userGorm) Upsert(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "is_verified"}),
	}).Create(u).Error
}
