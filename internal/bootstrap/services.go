package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/makaan/makaan-api/config"
	"github.com/makaan/makaan-api/internal/adapters/password"
	"github.com/makaan/makaan-api/internal/adapters/s3store"
	"github.com/makaan/makaan-api/internal/adapters/token"
	"github.com/makaan/makaan-api/internal/data"
	"github.com/makaan/makaan-api/internal/ports"
	"github.com/makaan/makaan-api/internal/service"
)

// ServiceDeps holds the shared infrastructure the services are built on.
type ServiceDeps struct {
	Config *config.AppConfig
	DB     *sql.DB
	Redis  redis.UniversalClient // Optional; nil disables caching
	Logger *slog.Logger
}

// Services bundles the application services the transports depend on.
type Services struct {
	Auth      *service.AuthService
	Listings  *service.ListingService
	Inquiries *service.InquiryService
}

// NewServices wires repositories and adapters into the application services.
func NewServices(ctx context.Context, deps *ServiceDeps) (*Services, error) {
	cfg := deps.Config

	images, err := s3store.New(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init image store: %w", err)
	}

	var cache ports.CacheRepository
	if deps.Redis != nil {
		cache = data.NewRedisCacheRepo(deps.Redis)
	}

	users := data.NewUserRepo(deps.DB)

	authSvc, err := service.NewAuthService(service.AuthServiceOptions{
		Users: users,
		Crypto: service.AuthCrypto{
			Hasher: password.NewHasher(cfg.Auth.BcryptCost),
			Tokens: token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		},
		Logger: deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init auth service: %w", err)
	}

	listingSvc, err := service.NewListingService(service.ListingServiceOptions{
		Stores: service.ListingStores{
			Properties: data.NewPropertyRepo(deps.DB),
			Users:      users,
		},
		Media: service.ListingMedia{
			Images:   images,
			Cache:    cache,
			CacheTTL: cfg.Cache.PropertyTTL,
		},
		Logger: deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init listing service: %w", err)
	}

	inquirySvc, err := service.NewInquiryService(service.InquiryServiceOptions{
		Inquiries: data.NewInquiryRepo(deps.DB),
		Logger:    deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init inquiry service: %w", err)
	}

	return &Services{
		Auth:      authSvc,
		Listings:  listingSvc,
		Inquiries: inquirySvc,
	}, nil
}
