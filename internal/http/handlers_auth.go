package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/makaan/makaan-api/internal/domain/model"
)

// AuthAPI defines the auth service operations the handlers depend on.
type AuthAPI interface {
	Signup(ctx context.Context, req model.CreateUserRequest) (model.User, string, error)
	Login(ctx context.Context, req model.LoginRequest) (model.User, string, error)
	CurrentUser(ctx context.Context, token string) (model.User, error)
}

// CookieSettings describes the session cookie handlers mint and clear.
type CookieSettings struct {
	Name   string
	Domain string
	TTL    time.Duration
	Secure bool
}

// AuthHandlers provides HTTP handlers for signup, login, logout and the
// current-user endpoint.
type AuthHandlers struct {
	Svc    AuthAPI
	Cookie CookieSettings
	Logger *slog.Logger
}

// Signup handles POST /api/signup. A successful registration sets the
// session cookie so the client is logged in immediately.
func (h *AuthHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.Svc.Signup(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, token)
	WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "user": user.Public()})
}

// Login handles POST /api/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.Svc.Login(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, token)
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "user": user.Public()})
}

// Logout handles POST /api/logout. Sessions are stateless, so logout just
// clears the cookie; repeating it is harmless.
func (h *AuthHandlers) Logout(w http.ResponseWriter, _ *http.Request) {
	h.clearSessionCookie(w)
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Me handles GET /api/auth/me. A valid token whose account no longer exists
// answers 404, not 401.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(h.Cookie.Name); err == nil {
		token = cookie.Value
	}

	user, err := h.Svc.CurrentUser(r.Context(), token)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "user": user.Public()})
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    token,
		Path:     "/",
		Domain:   h.Cookie.Domain,
		MaxAge:   int(h.Cookie.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.Cookie.Secure || r.TLS != nil,
	})
}

func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    "",
		Path:     "/",
		Domain:   h.Cookie.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.Cookie.Secure,
	})
}
