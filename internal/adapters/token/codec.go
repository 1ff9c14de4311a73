package token

// Package token implements the session token codec on HS256 JWTs.

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/makaan/makaan-api/internal/domain/auth"
	"github.com/makaan/makaan-api/internal/ports"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// expired, malformed. Callers get one opaque reason so responses cannot leak
// which check failed.
var ErrInvalidToken = errors.New("invalid token")

// sessionClaims is the wire shape of a session token.
type sessionClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256 session tokens. The clock is injectable
// for expiry-boundary tests; zero value of now means time.Now.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenCodec = (*Codec)(nil)

// NewCodec creates a Codec signing with secret and issuing tokens valid
// for ttl.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the codec using now as its time source.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	clone := *c
	clone.now = now
	return &clone
}

// Issue signs a token carrying the claims, expiring after the codec TTL.
func (c *Codec) Issue(claims domainauth.Claims) (string, error) {
	issued := c.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(c.ttl)),
		},
	})

	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the session it encodes.
func (c *Codec) Verify(token string) (domainauth.Session, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	parsed, err := parser.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return c.secret, nil
	})
	if err != nil {
		return domainauth.Session{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return domainauth.Session{}, ErrInvalidToken
	}

	return domainauth.Session{
		UserID:    claims.UserID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
