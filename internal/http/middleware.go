package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/makaan/makaan-api/internal/domain/auth"
)

// SessionVerifier resolves a session token to a verified session. All
// verification failures are equivalent; callers never learn why a token was
// rejected.
type SessionVerifier interface {
	VerifySession(token string) (domainauth.Session, error)
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GateConfig configures the request gate.
type GateConfig struct {
	Auth       SessionVerifier
	CookieName string
}

// Gate returns the middleware that fences off non-public routes. Requests
// with a valid session cookie pass with the session attached to the context.
// Unauthenticated page requests are redirected to the login page with the
// original path preserved; unauthenticated API requests get a 401.
//
// Public routes pass untouched, though a valid session is still attached
// when present so downstream handlers can personalize responses.
func Gate(cfg GateConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromRequest(r, cfg.Auth, cfg.CookieName)
			if ok {
				r = r.WithContext(SetSessionInContext(r.Context(), &session))
			}

			if isPublicRoute(r) || ok {
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, "/api/") {
				WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Message: "Not authenticated"})
				return
			}
			http.Redirect(w, r, "/login?from="+url.QueryEscape(r.URL.Path), http.StatusFound)
		})
	}
}

// isPublicRoute reports whether the request may pass the gate without a
// session. Property reads and creation both pass; creation authenticates in
// its handler so it can answer with a JSON 401 instead of a redirect.
func isPublicRoute(r *http.Request) bool {
	switch r.URL.Path {
	case "/", "/login", "/signup", "/healthz",
		"/api/login", "/api/signup", "/api/logout",
		"/api/contact", "/api/auth/me":
		return true
	}
	if r.URL.Path == "/api/properties" || strings.HasPrefix(r.URL.Path, "/api/properties/") {
		return true
	}
	return false
}

// SessionFromRequest extracts the session cookie and verifies it. A missing
// cookie and a failed verification are indistinguishable.
func SessionFromRequest(r *http.Request, auth SessionVerifier, cookieName string) (domainauth.Session, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return domainauth.Session{}, false
	}
	session, err := auth.VerifySession(cookie.Value)
	if err != nil {
		return domainauth.Session{}, false
	}
	return session, true
}
