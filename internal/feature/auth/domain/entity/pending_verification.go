package entity

import "time"

// PendingVerification stages a registration between the register and
// verify steps. The row holds both the one-time code and the bcrypt
// hash of the prospective password, so a process restart does not
// strand the registrant. One row per email; a repeated register call
// replaces it wholesale.
type PendingVerification struct {
	// Email is the address being verified.
	Email string `gorm:"primaryKey;size:255"`

	// Code is the 6-digit numeric code mailed to the address.
	// Compared by exact string equality.
	Code string `gorm:"size:6;not null"`

	// PasswordHash is the staged bcrypt hash promoted onto the User
	// row once the code checks out.
	PasswordHash string `gorm:"size:255;not null"`

	// ExpiresAt bounds the verification window (10 minutes from
	// issuance). Expired rows are inert and removed lazily on the
	// next verify attempt.
	ExpiresAt time.Time `gorm:"not null"`
}

// IsExpired returns true once the verification window has closed.
func (p *PendingVerification) IsExpired() bool {
	return time.Now().After(p.ExpiresAt)
}
