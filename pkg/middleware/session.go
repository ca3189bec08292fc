package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"campaigniq/internal/user"
	"campaigniq/pkg/httperr"
)

// SessionCookie is the name of the http-only cookie carrying the session
// token. The same token is accepted as an Authorization bearer; the
// cookie wins when both are present.
const SessionCookie = "session_token"

type ctxKey int

const userKey ctxKey = iota

// IdentityResolver maps a session token to its user. A nil user with a
// nil error means anonymous.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*user.User, error)
}

// TokenFromRequest extracts the candidate session token, cookie first.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// SessionAuth resolves the request identity and stores it in the context.
// Resolution failures fall back to anonymous silently; gating happens in
// RequireUser / RequireAdmin, not here.
func SessionAuth(resolver IdentityResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token != "" {
				u, err := resolver.Resolve(r.Context(), token)
				if err != nil {
					log.Warn("session resolution failed", "err", err)
				} else if u != nil {
					r = r.WithContext(context.WithValue(r.Context(), userKey, u))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom returns the resolved identity, if any.
func UserFrom(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			httperr.Write(w, httperr.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFrom(r.Context())
		if !ok {
			httperr.Write(w, httperr.ErrUnauthorized)
			return
		}
		if !u.IsAdmin {
			httperr.Write(w, httperr.New(http.StatusForbidden, "Admin access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
