package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainauth "github.com/makaan/makaan-api/internal/domain/auth"
	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
	"github.com/makaan/makaan-api/internal/ports"
)

// invalidCredentialsMsg is returned for every login failure. Unknown email,
// wrong password and invalid input all read the same to the client.
const invalidCredentialsMsg = "Invalid email or password"

// notAuthenticatedMsg is returned whenever a session token is missing or
// fails verification, regardless of the reason.
const notAuthenticatedMsg = "Not authenticated"

// AuthCrypto groups the cryptographic dependencies of AuthService.
type AuthCrypto struct {
	Hasher ports.PasswordHasher
	Tokens ports.TokenCodec
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserStore // Required: account storage
	Crypto AuthCrypto      // Required: password hashing and token codec
	Logger *slog.Logger    // Optional: structured logger
}

// AuthService implements signup, login and session resolution.
type AuthService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenCodec
	logger *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Users == nil {
		return nil, errors.New("UserStore is required")
	}
	if opts.Crypto.Hasher == nil {
		return nil, errors.New("PasswordHasher is required")
	}
	if opts.Crypto.Tokens == nil {
		return nil, errors.New("TokenCodec is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "auth_service")
		logger.Debug("AuthService initialized")
	}

	return &AuthService{
		users:  opts.Users,
		hasher: opts.Crypto.Hasher,
		tokens: opts.Crypto.Tokens,
		logger: logger,
	}, nil
}

// MustNewAuthService constructs a new AuthService and panics on error.
// Use this when you want fail-fast behavior during application startup.
func MustNewAuthService(opts AuthServiceOptions) *AuthService {
	svc, err := NewAuthService(opts)
	if err != nil {
		panic(err) //nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
	}
	return svc
}

// Signup registers a new account and signs a session token for it, so the
// client is logged in immediately after registering.
func (s *AuthService) Signup(ctx context.Context, req model.CreateUserRequest) (model.User, string, error) {
	if err := req.Validate(); err != nil {
		return model.User{}, "", apperrors.Validation(err.Error())
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		if apperrors.IsConflict(err) {
			return model.User{}, "", apperrors.Conflict("User already exists")
		}
		return model.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(domainauth.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return model.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	}
	return user, token, nil
}

// Login verifies credentials and signs a session token. All failure paths
// return the same unauthorized error so a caller cannot probe which emails
// are registered.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.User, string, error) {
	if err := req.Validate(); err != nil {
		return model.User{}, "", apperrors.Unauthorized(invalidCredentialsMsg)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return model.User{}, "", apperrors.Unauthorized(invalidCredentialsMsg)
		}
		return model.User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return model.User{}, "", apperrors.Unauthorized(invalidCredentialsMsg)
	}

	token, err := s.tokens.Issue(domainauth.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return model.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	}
	return user, token, nil
}

// VerifySession parses and validates a session token. Every failure, from a
// missing cookie to an expired or forged token, maps to one unauthorized
// error.
func (s *AuthService) VerifySession(token string) (domainauth.Session, error) {
	if token == "" {
		return domainauth.Session{}, apperrors.Unauthorized(notAuthenticatedMsg)
	}
	sess, err := s.tokens.Verify(token)
	if err != nil {
		return domainauth.Session{}, apperrors.Unauthorized(notAuthenticatedMsg)
	}
	return sess, nil
}

// CurrentUser resolves a session token to the stored account. A valid token
// whose account has since been deleted yields a not-found error, not an
// unauthorized one.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (model.User, error) {
	sess, err := s.VerifySession(token)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return model.User{}, apperrors.NotFound("User not found")
		}
		return model.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
