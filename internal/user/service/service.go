package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"campaigniq/internal/store"
	"campaigniq/internal/user"
	"campaigniq/pkg/hash"
	"campaigniq/pkg/httperr"
)

const SessionTTL = 7 * 24 * time.Hour

var (
	ErrEmailTaken   = httperr.New(http.StatusConflict, "Email already registered")
	ErrInvalidCreds = httperr.New(http.StatusUnauthorized, "Invalid credentials")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *user.Session) error
	GetByToken(ctx context.Context, token string) (*user.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type UserService struct {
	users    UserRepository
	sessions SessionRepository
	log      *slog.Logger
}

func NewUserService(users UserRepository, sessions SessionRepository, log *slog.Logger) *UserService {
	return &UserService{users: users, sessions: sessions, log: log}
}

// Register creates a user and an initial session. The email must be
// unused; the password is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*user.User, *user.Session, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, nil, err
	}

	hashed, err := hash.Password(password)
	if err != nil {
		return nil, nil, err
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, nil, err
	}

	session, err := s.createSession(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, session, nil
}

// Login verifies credentials and opens a fresh session. Existing sessions
// for the user stay valid; there is no session cap.
func (s *UserService) Login(ctx context.Context, email, password string) (*user.User, *user.Session, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCreds
		}
		return nil, nil, err
	}

	if !hash.Verify(u.PasswordHash, password) {
		return nil, nil, ErrInvalidCreds
	}

	session, err := s.createSession(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, session, nil
}

// Resolve maps a candidate token to its user. Missing sessions, expired
// sessions and sessions pointing at deleted users all yield (nil, nil):
// the caller is anonymous, not in error. Resolve never extends expiry and
// never deletes expired rows.
func (s *UserService) Resolve(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if session.Expired(time.Now().UTC()) {
		return nil, nil
	}

	u, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Logout deletes the session row. Unknown tokens are not an error.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, token)
}

func (s *UserService) createSession(ctx context.Context, userID string) (*user.Session, error) {
	token, err := generateToken(32)
	if err != nil {
		return nil, err
	}
	session := &user.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(SessionTTL),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func generateToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
