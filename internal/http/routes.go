package httpx

import (
	"log/slog"
	"net/http"

	"github.com/makaan/makaan-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Listings  *service.ListingService
	Inquiries *service.InquiryService

	Cookie         CookieSettings
	MaxUploadBytes int64
	Logger         *slog.Logger // Optional; defaults to slog.Default()
}

// NewRouter creates and configures the HTTP router, wrapped in the standard
// middleware chain: panic recovery, request logging, then the gate.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth, Cookie: services.Cookie, Logger: logger}
	mux.HandleFunc("POST /api/signup", authHandlers.Signup)
	mux.HandleFunc("POST /api/login", authHandlers.Login)
	mux.HandleFunc("POST /api/logout", authHandlers.Logout)
	mux.HandleFunc("GET /api/auth/me", authHandlers.Me)

	propertyHandlers := &PropertyHandlers{
		Svc:            services.Listings,
		Auth:           services.Auth,
		Cookie:         services.Cookie,
		MaxUploadBytes: services.MaxUploadBytes,
		Logger:         logger,
	}
	mux.HandleFunc("GET /api/properties", propertyHandlers.List)
	mux.HandleFunc("GET /api/properties/{id}", propertyHandlers.Get)
	mux.HandleFunc("POST /api/properties", propertyHandlers.Create)

	contactHandlers := &ContactHandlers{Svc: services.Inquiries, Logger: logger}
	mux.HandleFunc("POST /api/contact", contactHandlers.Create)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	handler = Gate(GateConfig{Auth: services.Auth, CookieName: services.Cookie.Name})(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
