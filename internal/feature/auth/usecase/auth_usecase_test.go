package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tutor_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	UpsertFunc      func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrNoSuchAccount // Default: no account
}

func (m *mockUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, user)
	}
	return nil // Default: success
}

// mockPendingRepository is a mock implementation of the PendingRepository interface.
type mockPendingRepository struct {
	UpsertFunc      func(ctx context.Context, p *entity.PendingVerification) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.PendingVerification, error)
	DeleteFunc      func(ctx context.Context, email string) error
}

func (m *mockPendingRepository) Upsert(ctx context.Context, p *entity.PendingVerification) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

func (m *mockPendingRepository) FindByEmail(ctx context.Context, email string) (*entity.PendingVerification, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrNoPendingVerification
}

func (m *mockPendingRepository) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	return nil
}

// mockSessionRepository is a mock implementation of the SessionRepository interface.
type mockSessionRepository struct {
	CreateFunc      func(ctx context.Context, s *entity.Session) error
	FindByTokenFunc func(ctx context.Context, tok string) (*entity.Session, error)
	DeleteFunc      func(ctx context.Context, tok string) (bool, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) FindByToken(ctx context.Context, tok string) (*entity.Session, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, tok)
	}
	return nil, ErrNotAuthenticated
}

func (m *mockSessionRepository) Delete(ctx context.Context, tok string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tok)
	}
	return false, nil
}

// mockMailer is a mock implementation of the Mailer interface.
type mockMailer struct {
	SendFunc func(ctx context.Context, email, code string) error
	sent     []string
}

func (m *mockMailer) Send(ctx context.Context, email, code string) error {
	m.sent = append(m.sent, code)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email, code)
	}
	return nil
}

func newTestUsecase() (*authUsecase, *mockUserRepository, *mockPendingRepository, *mockSessionRepository, *mockMailer) {
	users := &mockUserRepository{}
	pending := &mockPendingRepository{}
	sessions := &mockSessionRepository{}
	mailer := &mockMailer{}
	return NewAuthUsecase(users, pending, sessions, mailer), users, pending, sessions, mailer
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration stages code and hash", func(t *testing.T) {
		uc, _, pending, _, mailer := newTestUsecase()

		var staged *entity.PendingVerification
		pending.UpsertFunc = func(ctx context.Context, p *entity.PendingVerification) error {
			staged = p
			return nil
		}

		err := uc.Register(ctx, "test@example.com", "password123")
		require.NoError(t, err)

		require.NotNil(t, staged, "pending row was not staged")
		assert.Equal(t, "test@example.com", staged.Email)
		assert.Regexp(t, `^[0-9]{6}$`, staged.Code)
		assert.WithinDuration(t, time.Now().Add(10*time.Minute), staged.ExpiresAt, 5*time.Second)

		// The staged hash must verify against the plaintext password.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staged.PasswordHash), []byte("password123")))

		// The mailed code is the staged one.
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, staged.Code, mailer.sent[0])
	})

	t.Run("verified account rejects", func(t *testing.T) {
		uc, users, _, _, mailer := newTestUsecase()
		users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email, IsVerified: true}, nil
		}

		err := uc.Register(ctx, "taken@example.com", "password123")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
		assert.Empty(t, mailer.sent, "no code should be mailed")
	})

	t.Run("short password rejects", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		err := uc.Register(ctx, "test@example.com", "short")
		assert.Error(t, err)
	})

	t.Run("explicit delivery failure surfaces", func(t *testing.T) {
		uc, _, _, _, mailer := newTestUsecase()
		mailer.SendFunc = func(ctx context.Context, email, code string) error {
			return errors.New("smtp refused")
		}

		err := uc.Register(ctx, "test@example.com", "password123")
		assert.ErrorIs(t, err, ErrDeliveryFailed)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		uc, _, pending, _, _ := newTestUsecase()
		storageErr := errors.New("disk full")
		pending.UpsertFunc = func(ctx context.Context, p *entity.PendingVerification) error {
			return storageErr
		}

		err := uc.Register(ctx, "test@example.com", "password123")
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestAuthUsecase_Verify(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	validPending := func() *entity.PendingVerification {
		return &entity.PendingVerification{
			Email:        "test@example.com",
			Code:         "123456",
			PasswordHash: string(hash),
			ExpiresAt:    time.Now().Add(5 * time.Minute),
		}
	}

	t.Run("successful verification promotes user and mints session", func(t *testing.T) {
		uc, users, pending, sessions, _ := newTestUsecase()
		pending.FindByEmailFunc = func(ctx context.Context, email string) (*entity.PendingVerification, error) {
			return validPending(), nil
		}

		var promoted *entity.User
		users.UpsertFunc = func(ctx context.Context, u *entity.User) error {
			promoted = u
			return nil
		}
		var deleted string
		pending.DeleteFunc = func(ctx context.Context, email string) error {
			deleted = email
			return nil
		}
		var created *entity.Session
		sessions.CreateFunc = func(ctx context.Context, s *entity.Session) error {
			created = s
			return nil
		}

		token, err := uc.Verify(ctx, "test@example.com", "123456")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		require.NotNil(t, promoted)
		assert.True(t, promoted.IsVerified)
		assert.Equal(t, "test@example.com", promoted.Email)
		assert.Equal(t, string(hash), promoted.PasswordHash)
		assert.NotEmpty(t, promoted.ID)

		assert.Equal(t, "test@example.com", deleted, "pending row must be consumed")

		require.NotNil(t, created)
		assert.Equal(t, token, created.Token)
		assert.Equal(t, "test@example.com", created.Email)
	})

	t.Run("no pending verification", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.Verify(ctx, "unknown@example.com", "123456")
		assert.ErrorIs(t, err, ErrNoPendingVerification)
	})

	t.Run("expired code is deleted", func(t *testing.T) {
		uc, _, pending, _, _ := newTestUsecase()
		pending.FindByEmailFunc = func(ctx context.Context, email string) (*entity.PendingVerification, error) {
			p := validPending()
			p.ExpiresAt = time.Now().Add(-time.Minute)
			return p, nil
		}
		var deleted bool
		pending.DeleteFunc = func(ctx context.Context, email string) error {
			deleted = true
			return nil
		}

		_, err := uc.Verify(ctx, "test@example.com", "123456")
		assert.ErrorIs(t, err, ErrCodeExpired)
		assert.True(t, deleted, "expired row must be removed lazily")
	})

	t.Run("code mismatch leaves row untouched", func(t *testing.T) {
		uc, _, pending, _, _ := newTestUsecase()
		pending.FindByEmailFunc = func(ctx context.Context, email string) (*entity.PendingVerification, error) {
			return validPending(), nil
		}
		pending.DeleteFunc = func(ctx context.Context, email string) error {
			t.Fatal("row must not be deleted on mismatch")
			return nil
		}

		_, err := uc.Verify(ctx, "test@example.com", "999999")
		assert.ErrorIs(t, err, ErrCodeMismatch)

		// The correct code still works afterwards.
		var promoted bool
		ucOK, users, pendingOK, _, _ := newTestUsecase()
		pendingOK.FindByEmailFunc = pending.FindByEmailFunc
		users.UpsertFunc = func(ctx context.Context, u *entity.User) error {
			promoted = true
			return nil
		}
		_, err = ucOK.Verify(ctx, "test@example.com", "123456")
		assert.NoError(t, err)
		assert.True(t, promoted)
	})

	t.Run("missing staged hash reports registration expired", func(t *testing.T) {
		uc, _, pending, _, _ := newTestUsecase()
		pending.FindByEmailFunc = func(ctx context.Context, email string) (*entity.PendingVerification, error) {
			p := validPending()
			p.PasswordHash = ""
			return p, nil
		}

		_, err := uc.Verify(ctx, "test@example.com", "123456")
		assert.ErrorIs(t, err, ErrRegistrationExpired)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	password := "password123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	verifiedUser := &entity.User{
		ID:           "user-001",
		Email:        "test@example.com",
		PasswordHash: string(hash),
		IsVerified:   true,
	}

	t.Run("successful login", func(t *testing.T) {
		uc, users, _, sessions, _ := newTestUsecase()
		users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return verifiedUser, nil
		}
		var created *entity.Session
		sessions.CreateFunc = func(ctx context.Context, s *entity.Session) error {
			created = s
			return nil
		}

		token, err := uc.Login(ctx, "test@example.com", password)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		require.NotNil(t, created)
		assert.Equal(t, token, created.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, ErrNoSuchAccount)
	})

	t.Run("unverified account", func(t *testing.T) {
		uc, users, _, _, _ := newTestUsecase()
		users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email, PasswordHash: string(hash), IsVerified: false}, nil
		}

		_, err := uc.Login(ctx, "test@example.com", password)
		assert.ErrorIs(t, err, ErrNotVerified)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, users, _, _, _ := newTestUsecase()
		users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return verifiedUser, nil
		}

		_, err := uc.Login(ctx, "test@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("each login mints a distinct token", func(t *testing.T) {
		uc, users, _, _, _ := newTestUsecase()
		users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return verifiedUser, nil
		}

		t1, err := uc.Login(ctx, "test@example.com", password)
		require.NoError(t, err)
		t2, err := uc.Login(ctx, "test@example.com", password)
		require.NoError(t, err)
		assert.NotEqual(t, t1, t2)
	})
}

func TestAuthUsecase_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token resolves the user", func(t *testing.T) {
		uc, users, _, sessions, _ := newTestUsecase()
		sessions.FindByTokenFunc = func(ctx context.Context, tok string) (*entity.Session, error) {
			return &entity.Session{Token: tok, Email: "test@example.com"}, nil
		}
		users.FindByEmailFunc = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: "user-001", Email: email, IsVerified: true}, nil
		}

		user, err := uc.Resolve(ctx, "some-token")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("unknown token", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.Resolve(ctx, "missing-token")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("session pointing at a missing account", func(t *testing.T) {
		uc, _, _, sessions, _ := newTestUsecase()
		sessions.FindByTokenFunc = func(ctx context.Context, tok string) (*entity.Session, error) {
			return &entity.Session{Token: tok, Email: "ghost@example.com"}, nil
		}

		_, err := uc.Resolve(ctx, "orphan-token")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}

func TestAuthUsecase_Revoke(t *testing.T) {
	ctx := context.Background()

	uc, _, _, sessions, _ := newTestUsecase()
	sessions.DeleteFunc = func(ctx context.Context, tok string) (bool, error) {
		return tok == "live-token", nil
	}

	existed, err := uc.Revoke(ctx, "live-token")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = uc.Revoke(ctx, "gone-token")
	require.NoError(t, err)
	assert.False(t, existed)
}
