package config

import "time"

// Cookie attribute defaults for the session cookie. The values mirror the
// contract clients rely on: the token lives in an HttpOnly, SameSite=Strict
// cookie whose lifetime matches the token TTL.
const (
	// DefaultCookieName is the session cookie carrying the signed token.
	DefaultCookieName = "auth-token"
	// DefaultTokenTTL is the session token lifetime (7 days).
	DefaultTokenTTL = 168 * time.Hour
)

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies session tokens. It must be identical
	// across all processes serving one deployment; tokens minted by one
	// process are otherwise rejected by another.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTL is the session token lifetime. The cookie MaxAge follows it.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	// CookieName is the name of the session cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"auth-token"`

	// CookieSecure forces the Secure attribute on the session cookie.
	// When false, Secure is still set for requests arriving over TLS.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	// CookieDomain is the domain for the session cookie.
	// Leave empty to use the request domain.
	CookieDomain string `env:"COOKIE_DOMAIN" envDefault:""`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = DefaultTokenTTL
	}
	if a.CookieName == "" {
		a.CookieName = DefaultCookieName
	}
	// Clamp the cost to the range bcrypt accepts; values outside it would
	// make every hash call fail at runtime.
	if a.BcryptCost < 4 {
		a.BcryptCost = 10
	}
	if a.BcryptCost > 31 {
		a.BcryptCost = 31
	}
}
