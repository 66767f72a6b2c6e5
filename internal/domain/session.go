package domain

import (
	"context"
	"time"
)

// Session is the result of a successful login: the backend's own bearer token
// for the named user.
// swagger:model Session
type Session struct {
	User      string    `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenIssuer issues signed tokens for a user identity.
type TokenIssuer interface {
	Issue(user string, expiry time.Duration) (token string, expiresAt time.Time, err error)
}

// TokenVerifier verifies a token and returns the authenticated user identity.
type TokenVerifier interface {
	Verify(token string) (user string, err error)
}

// SessionService logs users in.
type SessionService interface {
	Login(ctx context.Context, user string) (*Session, error)
}
