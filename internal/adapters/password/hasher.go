package password

// Package password implements credential hashing on bcrypt.

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/makaan/makaan-api/internal/ports"
)

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

var _ ports.PasswordHasher = (*Hasher)(nil)

// NewHasher creates a Hasher with the given bcrypt cost. Out-of-range costs
// fall back to bcrypt's default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a storable digest from a plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. Any comparison failure,
// including a malformed digest, yields false.
func (h *Hasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
