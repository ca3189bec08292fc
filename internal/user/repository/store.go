package repository

import (
	"context"
	"time"

	"campaigniq/internal/store"
	"campaigniq/internal/user"
)

const (
	usersTable    = "users"
	sessionsTable = "user_sessions"
)

// userRow mirrors the users table. The password hash lives only here;
// the domain model never serializes it.
type userRow struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture,omitempty"`
	PasswordHash string    `json:"password_hash,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r userRow) toUser() *user.User {
	return &user.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Picture:      r.Picture,
		PasswordHash: r.PasswordHash,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    r.CreatedAt,
	}
}

func toRow(u *user.User) userRow {
	return userRow{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Picture:      u.Picture,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
	}
}

type StoreUserRepository struct {
	store *store.Client
}

func NewStoreUserRepository(s *store.Client) *StoreUserRepository {
	return &StoreUserRepository{store: s}
}

func (r *StoreUserRepository) Create(ctx context.Context, u *user.User) error {
	return r.store.Insert(ctx, usersTable, toRow(u))
}

func (r *StoreUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var row userRow
	err := r.store.SelectOne(ctx, usersTable, store.Where().Eq("email", email), &row)
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

func (r *StoreUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var row userRow
	err := r.store.SelectOne(ctx, usersTable, store.Where().Eq("id", id), &row)
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

func (r *StoreUserRepository) Count(ctx context.Context) (int, error) {
	var rows []userRow
	err := r.store.Select(ctx, usersTable, store.Where().Limit(10000), &rows)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

type StoreSessionRepository struct {
	store *store.Client
}

func NewStoreSessionRepository(s *store.Client) *StoreSessionRepository {
	return &StoreSessionRepository{store: s}
}

func (r *StoreSessionRepository) Create(ctx context.Context, s *user.Session) error {
	return r.store.Insert(ctx, sessionsTable, s)
}

func (r *StoreSessionRepository) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	var s user.Session
	err := r.store.SelectOne(ctx, sessionsTable, store.Where().Eq("session_token", token), &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.store.Delete(ctx, sessionsTable, store.Where().Eq("session_token", token))
}
