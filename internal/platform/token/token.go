// Package token generates the random identifiers used by the auth flow.
// Everything here draws from crypto/rand; none of these values may be
// guessable.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const (
	// sessionTokenBytes is the entropy of a bearer session token.
	sessionTokenBytes = 32

	// userIDBytes is the entropy of a user identifier minted at
	// verification time.
	userIDBytes = 16

	// codeSpace bounds the 6-digit verification code (000000-999999).
	codeSpace = 1000000
)

// NewSessionToken returns an opaque URL-safe bearer token.
func NewSessionToken() (string, error) {
	return randomURLSafe(sessionTokenBytes)
}

// NewUserID returns an opaque user identifier.
func NewUserID() (string, error) {
	return randomURLSafe(userIDBytes)
}

// NewVerificationCode returns a zero-padded 6-digit code drawn
// uniformly from 000000-999999.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("failed to draw verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// randomURLSafe returns size random bytes encoded without padding so
// the value can travel in headers and URLs unescaped.
func randomURLSafe(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
