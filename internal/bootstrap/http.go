package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/makaan/makaan-api/config"
	httpx "github.com/makaan/makaan-api/internal/http"
)

const shutdownTimeout = 10 * time.Second

// NewHTTPServer builds the HTTP server with the full router and middleware
// chain.
func NewHTTPServer(cfg *config.AppConfig, services *Services, logger *slog.Logger) *http.Server {
	router := httpx.NewRouter(httpx.RouterServices{
		Auth:           services.Auth,
		Listings:       services.Listings,
		Inquiries:      services.Inquiries,
		Cookie:         cookieSettings(cfg),
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		Logger:         logger,
	})

	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// cookieSettings maps auth configuration onto the session cookie contract.
// Outside development the cookie is always Secure.
func cookieSettings(cfg *config.AppConfig) httpx.CookieSettings {
	return httpx.CookieSettings{
		Name:   cfg.Auth.CookieName,
		Domain: cfg.Auth.CookieDomain,
		TTL:    cfg.Auth.TokenTTL,
		Secure: cfg.Auth.CookieSecure || !cfg.IsDev,
	}
}

// RunServerWithShutdown serves until the context is canceled or SIGINT or
// SIGTERM arrives, then drains in-flight requests within the shutdown
// timeout.
func RunServerWithShutdown(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return <-errCh
}
