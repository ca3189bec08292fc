package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigniq/internal/user"
)

const testSecret = "super-secret"

func mintAccessToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthorizeURL(t *testing.T) {
	v := NewOAuthVerifier(testSecret, "https://project.supabase.co/")

	got := v.AuthorizeURL("google", "https://app.test/auth/callback")
	assert.Equal(t,
		"https://project.supabase.co/auth/v1/authorize?provider=google&redirect_to=https%3A%2F%2Fapp.test%2Fauth%2Fcallback",
		got)
}

func TestOAuthLoginCreatesUser(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	svc := newService(users, sessions)
	v := NewOAuthVerifier(testSecret, "https://project.supabase.co")

	token := mintAccessToken(t, testSecret, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{
			"full_name":  "Alice Example",
			"avatar_url": "https://pics.test/alice.png",
		},
	})

	u, session, err := svc.OAuthLogin(context.Background(), v, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice Example", u.Name)
	assert.Equal(t, "https://pics.test/alice.png", u.Picture)
	assert.Empty(t, u.PasswordHash)
	assert.Contains(t, sessions.byToken, session.Token)
	require.Len(t, users.created, 1)
}

func TestOAuthLoginExistingUser(t *testing.T) {
	users := newFakeUserRepo()
	users.add(&user.User{ID: "u1", Email: "alice@example.com", Name: "Alice"})
	svc := newService(users, newFakeSessionRepo())
	v := NewOAuthVerifier(testSecret, "https://project.supabase.co")

	token := mintAccessToken(t, testSecret, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	u, _, err := svc.OAuthLogin(context.Background(), v, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Empty(t, users.created, "no duplicate user row")
}

func TestOAuthLoginNameDefaultsToLocalPart(t *testing.T) {
	svc := newService(newFakeUserRepo(), newFakeSessionRepo())
	v := NewOAuthVerifier(testSecret, "https://project.supabase.co")

	token := mintAccessToken(t, testSecret, jwt.MapClaims{
		"email": "bob@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	u, _, err := svc.OAuthLogin(context.Background(), v, token)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Name)
}

func TestOAuthLoginRejects(t *testing.T) {
	svc := newService(newFakeUserRepo(), newFakeSessionRepo())
	v := NewOAuthVerifier(testSecret, "https://project.supabase.co")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", mintAccessToken(t, "other-secret", jwt.MapClaims{
			"email": "alice@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})},
		{"expired", mintAccessToken(t, testSecret, jwt.MapClaims{
			"email": "alice@example.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})},
		{"no email claim", mintAccessToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.OAuthLogin(context.Background(), v, tt.token)
			assert.ErrorIs(t, err, ErrInvalidOAuthToken)
		})
	}
}
