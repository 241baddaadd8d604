package entity

import "time"

// Session is an opaque bearer credential. A token stays valid until
// it is explicitly revoked; there is no TTL, and a user may hold any
// number of concurrent sessions.
type Session struct {
	// Token is the URL-safe random bearer value (32 bytes of entropy).
	Token string `gorm:"primaryKey;size:64"`

	// Email identifies the account the session belongs to.
	Email string `gorm:"index;size:255;not null"`

	// CreatedAt is the time the session was minted.
	CreatedAt time.Time
}
