// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tutor_backend/internal/feature/auth/domain/entity"
	"tutor_backend/internal/feature/auth/transport/http/dto"
	"tutor_backend/internal/feature/auth/transport/middleware"
	"tutor_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the account and session operations the handler
// depends on. Following Go convention: interfaces are defined by the
// consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register stages a registration and mails a verification code.
	Register(ctx context.Context, email, password string) error
	// Verify redeems a code and returns a session token.
	Verify(ctx context.Context, email, code string) (string, error)
	// Login authenticates a password and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// Revoke deletes a session and reports whether it existed.
	Revoke(ctx context.Context, token string) (bool, error)
}

// AuthHandler handles HTTP requests for registration, verification,
// login, logout and the current-user lookup.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
// - 400 on validation or password-policy failure
// - 409 when the email already belongs to a verified account
// - 502 when the notification gateway explicitly fails
// - 200 with a confirmation message otherwise
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("registration staged", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "verification code sent to your email"})
	case errors.Is(err, usecase.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrDeliveryFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("register failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "registration failed"})
	}
}

// Verify handles POST /auth/verify.
// Each taxonomy failure surfaces its own stable reason string so the
// client can branch on cause.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.auth.Verify(c.Request.Context(), req.Email, req.Code)
	switch {
	case err == nil:
		slog.Info("email verified", "email", req.Email)
		c.JSON(http.StatusOK, dto.TokenResponse{Message: "email verified successfully", Token: token})
	case errors.Is(err, usecase.ErrNoPendingVerification),
		errors.Is(err, usecase.ErrCodeExpired),
		errors.Is(err, usecase.ErrCodeMismatch),
		errors.Is(err, usecase.ErrRegistrationExpired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("verify failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "verification failed"})
	}
}

// Login handles POST /auth/login.
// All three credential failures return 401 with distinct reasons.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, dto.TokenResponse{Message: "login successful", Token: token})
	case errors.Is(err, usecase.ErrNoSuchAccount),
		errors.Is(err, usecase.ErrNotVerified),
		errors.Is(err, usecase.ErrInvalidPassword):
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("login failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "login failed"})
	}
}

// Logout handles POST /auth/logout. Revocation is best effort: a
// missing or malformed token still answers 200, matching the
// idempotent logout the clients expect.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		tok := strings.TrimPrefix(auth, "Bearer ")
		if _, err := h.auth.Revoke(c.Request.Context(), tok); err != nil {
			slog.Warn("logout revoke failed", "error", err)
		}
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out successfully"})
}

// Me handles GET /auth/me on the authenticated group. The middleware
// has already resolved the session, so this is a plain projection.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// userResponse projects a domain user into its transport shape.
func userResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
