//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxUserNameLen   = 100
	minPasswordLen   = 6
	maxUserEmailLen  = 255
	maxPasswordBytes = 72 // bcrypt input limit
)

// reEmail is a permissive shape check; real validation is delivery.
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User represents a registered account. PasswordHash never serializes.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Name         string    `json:"name"       db:"name"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PublicUser is the client-facing view of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the client-facing view of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// CreateUserRequest represents parameters to register a new account.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates CreateUserRequest and normalizes whitespace on
// name and email. Email comparison stays case-sensitive.
func (r *CreateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if r.Name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(r.Name) > maxUserNameLen {
		return errors.New("name cannot exceed 100 characters")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if len(r.Email) > maxUserEmailLen || !reEmail.MatchString(r.Email) {
		return errors.New("email is invalid")
	}
	if len(r.Password) < minPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	if len(r.Password) > maxPasswordBytes {
		return errors.New("password cannot exceed 72 bytes")
	}
	return nil
}

// LoginRequest represents login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}
