package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tutor_backend/internal/feature/auth/domain/entity"
	"tutor_backend/internal/platform/token"
)

const (
	// minPasswordLength is the minimum accepted password size.
	minPasswordLength = 8

	// verificationTTL is the window in which an issued code can be
	// redeemed.
	verificationTTL = 10 * time.Minute
)

// dummyHash keeps bcrypt work constant when the account does not
// exist, so login timing does not leak which emails are registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts persistence of verified accounts.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByEmail retrieves the account for an email.
	// Returns ErrNoSuchAccount when no row exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Upsert inserts the account, or on an email conflict overwrites
	// the password hash and verified flag while keeping the original ID.
	Upsert(ctx context.Context, user *entity.User) error
}

// PendingRepository abstracts persistence of staged registrations.
type PendingRepository interface {
	// Upsert replaces any staged registration for the email (last
	// write wins).
	Upsert(ctx context.Context, pending *entity.PendingVerification) error

	// FindByEmail retrieves the staged registration for an email.
	// Returns ErrNoPendingVerification when no row exists.
	FindByEmail(ctx context.Context, email string) (*entity.PendingVerification, error)

	// Delete removes the staged registration for an email.
	Delete(ctx context.Context, email string) error
}

// SessionRepository abstracts persistence of bearer sessions.
type SessionRepository interface {
	// Create persists a freshly minted session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its bearer token.
	// Returns ErrNotAuthenticated when no row exists.
	FindByToken(ctx context.Context, tok string) (*entity.Session, error)

	// Delete removes a session and reports whether a row existed.
	Delete(ctx context.Context, tok string) (bool, error)
}

// Mailer delivers a verification code to an address. Implementations
// that are not configured for real delivery log the code and return
// nil; a non-nil error means the gateway explicitly failed.
type Mailer interface {
	Send(ctx context.Context, email, code string) error
}

// authUsecase implements the registration, login and session logic.
type authUsecase struct {
	users    UserRepository
	pending  PendingRepository
	sessions SessionRepository
	mailer   Mailer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, pending PendingRepository, sessions SessionRepository, mailer Mailer) *authUsecase {
	return &authUsecase{
		users:    users,
		pending:  pending,
		sessions: sessions,
		mailer:   mailer,
	}
}

// validatePassword checks that a password meets the minimum policy.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register stages a registration and mails a verification code.
// A verified account for the email rejects with ErrAlreadyRegistered;
// an unverified retry simply replaces the staged row and code.
func (u *authUsecase) Register(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNoSuchAccount) {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if existing != nil && existing.IsVerified {
		return ErrAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := token.NewVerificationCode()
	if err != nil {
		return err
	}

	p := &entity.PendingVerification{
		Email:        email,
		Code:         code,
		PasswordHash: string(hashed),
		ExpiresAt:    time.Now().Add(verificationTTL),
	}
	if err := u.pending.Upsert(ctx, p); err != nil {
		return fmt.Errorf("failed to stage registration: %w", err)
	}

	// An unconfigured mailer logs the code and reports success; only
	// an explicit gateway failure reaches the caller.
	if err := u.mailer.Send(ctx, email, code); err != nil {
		slog.Error("verification mail delivery failed", "email", email, "error", err)
		return ErrDeliveryFailed
	}
	return nil
}

// Verify redeems a code, promotes the staged registration into a
// verified account and mints a session token.
func (u *authUsecase) Verify(ctx context.Context, email, code string) (string, error) {
	p, err := u.pending.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if p.IsExpired() {
		// Lazy cleanup: expired rows are removed on the attempt that
		// discovers them.
		if delErr := u.pending.Delete(ctx, email); delErr != nil {
			slog.Warn("failed to drop expired verification", "email", email, "error", delErr)
		}
		return "", ErrCodeExpired
	}

	if p.Code != code {
		return "", ErrCodeMismatch
	}

	if p.PasswordHash == "" {
		return "", ErrRegistrationExpired
	}

	id, err := token.NewUserID()
	if err != nil {
		return "", err
	}
	user := &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: p.PasswordHash,
		IsVerified:   true,
		CreatedAt:    time.Now(),
	}
	// Re-verifying an existing account silently resets its password to
	// the staged one. Kept on purpose: the original protocol behaves
	// this way, and changing it would lock out anyone who re-registers.
	if err := u.users.Upsert(ctx, user); err != nil {
		return "", fmt.Errorf("failed to promote registration: %w", err)
	}

	if err := u.pending.Delete(ctx, email); err != nil {
		slog.Warn("failed to drop redeemed verification", "email", email, "error", err)
	}

	return u.mintSession(ctx, email)
}

// Login authenticates a password and mints a new session without
// touching any existing ones.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNoSuchAccount) {
			// Equalize timing with the found-account path before
			// reporting the miss.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", ErrNoSuchAccount
		}
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	if !user.IsVerified {
		return "", ErrNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	return u.mintSession(ctx, email)
}

// Resolve maps a bearer token to the account it belongs to.
func (u *authUsecase) Resolve(ctx context.Context, tok string) (*entity.User, error) {
	sess, err := u.sessions.FindByToken(ctx, tok)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByEmail(ctx, sess.Email)
	if err != nil {
		if errors.Is(err, ErrNoSuchAccount) {
			// A session pointing at a missing account is as good as
			// no session.
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}

// Revoke deletes a session and reports whether it existed.
func (u *authUsecase) Revoke(ctx context.Context, tok string) (bool, error) {
	return u.sessions.Delete(ctx, tok)
}

// mintSession creates and persists a fresh bearer session.
func (u *authUsecase) mintSession(ctx context.Context, email string) (string, error) {
	tok, err := token.NewSessionToken()
	if err != nil {
		return "", err
	}
	sess := &entity.Session{
		Token:     tok,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := u.sessions.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}
	return tok, nil
}
