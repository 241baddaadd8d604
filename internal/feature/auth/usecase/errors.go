// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrAlreadyRegistered is returned when registering an email that
	// already belongs to a verified account.
	ErrAlreadyRegistered = errors.New("email already registered")

	// ErrNoPendingVerification is returned when verifying an email
	// that has no outstanding code.
	ErrNoPendingVerification = errors.New("no verification pending for this email")

	// ErrCodeExpired is returned when the verification window has
	// closed. The stale row is removed as a side effect.
	ErrCodeExpired = errors.New("verification code expired")

	// ErrCodeMismatch is returned when the submitted code does not
	// match the issued one. The row is left untouched so the correct
	// code can still be submitted.
	ErrCodeMismatch = errors.New("invalid verification code")

	// ErrRegistrationExpired is returned when a code row exists but
	// carries no staged password hash to promote.
	ErrRegistrationExpired = errors.New("registration expired, please start again")

	// ErrNoSuchAccount is returned when logging in with an unknown email.
	ErrNoSuchAccount = errors.New("no account found with this email")

	// ErrNotVerified is returned when logging in before the email
	// ownership check has succeeded.
	ErrNotVerified = errors.New("please verify your email first")

	// ErrInvalidPassword is returned when the password comparison fails.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrNotAuthenticated is returned when a bearer token resolves to
	// no session.
	ErrNotAuthenticated = errors.New("invalid or expired session")

	// ErrDeliveryFailed is returned when the notification gateway
	// explicitly reports that the code could not be sent.
	ErrDeliveryFailed = errors.New("failed to send verification email")
)
