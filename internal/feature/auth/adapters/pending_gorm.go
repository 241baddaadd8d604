package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tutor_backend/internal/feature/auth/domain/entity"
	"tutor_backend/internal/feature/auth/usecase"
)

// pendingGorm is the relational implementation of the PendingRepository
// interface. Staged registrations are durable rows rather than process
// memory, so a restart between register and verify does not strand the
// registrant.
type pendingGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure pendingGorm implements PendingRepository.
var _ usecase.PendingRepository = (*pendingGorm)(nil)

// NewPendingGorm creates a new instance of pendingGorm.
func NewPendingGorm(db *gorm.DB) *pendingGorm {
	return &pendingGorm{db: db}
}

// Upsert replaces any staged registration for the email. Last write
// wins: a repeated register call overwrites the prior code, hash and
// expiry in one row-level operation.
func (r *pendingGorm) Upsert(ctx context.Context, p *entity.PendingVerification) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "password_hash", "expires_at"}),
	}).Create(p).Error
}

// FindByEmail retrieves the staged registration for an email.
// Returns usecase.ErrNoPendingVerification when no row exists.
func (r *pendingGorm) FindByEmail(ctx context.Context, email string) (*entity.PendingVerification, error) {
	var p entity.PendingVerification
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoPendingVerification
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes the staged registration for an email. Deleting an
// absent row is not an error.
func (r *pendingGorm) Delete(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&entity.PendingVerification{}).Error
}
