package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Claims is the payload carried inside a session token. Adapters map
// wire-format claims into this shape.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Session represents a verified session as seen by handlers: the token
// claims plus the absolute expiry extracted from the token.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Claims returns the token claims for this session.
func (s Session) Claims() Claims {
	return Claims{UserID: s.UserID, Email: s.Email}
}
