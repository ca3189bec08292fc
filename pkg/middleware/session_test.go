package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigniq/internal/user"
)

type fakeResolver struct {
	users map[string]*user.User
}

func (f *fakeResolver) Resolve(ctx context.Context, token string) (*user.User, error) {
	return f.users[token], nil
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
		assert.Equal(t, "cookie-token", TokenFromRequest(r))
	})

	t.Run("bearer", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "header-token", TokenFromRequest(r))
	})

	t.Run("cookie wins over bearer", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "cookie-token", TokenFromRequest(r))
	})

	t.Run("none", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, TokenFromRequest(r))
	})

	t.Run("non-bearer authorization", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Empty(t, TokenFromRequest(r))
	})
}

func TestSessionAuth(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*user.User{
		"good": {ID: "u1", Name: "Alice"},
	}}

	var resolved *user.User
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved, ok = UserFrom(r.Context())
	})
	handler := SessionAuth(resolver, slog.New(slog.DiscardHandler))(next)

	t.Run("valid token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
		handler.ServeHTTP(httptest.NewRecorder(), r)

		require.True(t, ok)
		assert.Equal(t, "u1", resolved.ID)
	})

	t.Run("unknown token stays anonymous", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "bad"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.False(t, ok)
		assert.Equal(t, http.StatusOK, w.Code, "anonymous is not an error here")
	})

	t.Run("no token stays anonymous", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), r)
		assert.False(t, ok)
	})
}

func withUser(r *http.Request, u *user.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, u))
}

func TestRequireUser(t *testing.T) {
	called := false
	handler := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})

	t.Run("authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/", nil), &user.User{ID: "u1"})
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})
}

func TestRequireAdmin(t *testing.T) {
	called := false
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("regular user", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/", nil), &user.User{ID: "u1"})
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, called)
	})

	t.Run("admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/", nil), &user.User{ID: "u1", IsAdmin: true})
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})
}
