package dto

import "time"

// MessageResponse carries a human-readable outcome string.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a bearer session token alongside the outcome
// string, mirroring the register/verify/login response shape clients
// already consume.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse carries a stable failure reason a client can branch on.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is the payload of /auth/me.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
