package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"campaigniq/internal/api/dto"
	"campaigniq/internal/user"
	"campaigniq/internal/user/service"
	"campaigniq/pkg/httperr"
	"campaigniq/pkg/middleware"
)

type Handler struct {
	users    *service.UserService
	verifier *service.OAuthVerifier
	// OAuth redirect target, <backend>/api/auth/google/callback.
	callbackURL string
	log         *slog.Logger
}

func NewHandler(users *service.UserService, verifier *service.OAuthVerifier, callbackURL string, log *slog.Logger) *Handler {
	return &Handler{users: users, verifier: verifier, callbackURL: callbackURL, log: log}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	u, session, err := h.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	h.setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, authResponse(u, session))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	u, session, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	h.setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, authResponse(u, session))
}

// GoogleLogin hands the client the provider's OAuth entry point.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"url": h.verifier.AuthorizeURL("google", h.callbackURL),
	})
}

// GoogleCallback exchanges a provider access token for a backend session.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	var req dto.OAuthCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if req.AccessToken == "" {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "Missing access token"))
		return
	}

	u, session, err := h.users.OAuthLogin(r.Context(), h.verifier, req.AccessToken)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	h.setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, authResponse(u, session))
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		httperr.Write(w, httperr.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	if err := h.users.Logout(r.Context(), token); err != nil {
		h.log.Warn("logout failed", "err", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, s *user.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.Token,
		Path:     "/",
		MaxAge:   int(service.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func authResponse(u *user.User, s *user.Session) map[string]any {
	return map[string]any{
		"user":          u,
		"session_token": s.Token,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
