// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// A row only ever exists for verified registrations: the staged
// credentials of an unverified signup live on PendingVerification
// until the code check promotes them here.
type User struct {
	// ID is the opaque identifier minted when the email is verified.
	ID string `gorm:"primaryKey;size:32"`

	// Email is the account's address, unique across all users.
	// Stored case-sensitive, compared exactly.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the account password.
	// Plaintext passwords are never persisted.
	PasswordHash string `gorm:"size:255;not null"`

	// IsVerified reports whether the email ownership check succeeded.
	// Persisted rows always carry true; the column exists so a future
	// moderation path can disable an account without deleting it.
	IsVerified bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp of the verification that created the row.
	CreatedAt time.Time
}
