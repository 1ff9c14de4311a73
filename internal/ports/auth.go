package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration
// in internal/service.

import (
	"context"

	domainauth "github.com/makaan/makaan-api/internal/domain/auth"
	"github.com/makaan/makaan-api/internal/domain/model"
)

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	// Hash derives a storable digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest. It fails
	// closed: malformed digests yield false, never an error path a caller
	// could confuse with success.
	Verify(digest, password string) bool
}

// TokenCodec issues and verifies session tokens. Both directions are pure
// functions of (input, secret, clock); no external I/O.
type TokenCodec interface {
	// Issue signs a token carrying the claims, expiring after the codec's TTL.
	Issue(claims domainauth.Claims) (string, error)

	// Verify parses and validates a token. Failures (bad signature, expired,
	// malformed) all return an error; callers must not distinguish them when
	// responding to clients.
	Verify(token string) (domainauth.Session, error)
}

// UserStore persists and retrieves accounts.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
}
