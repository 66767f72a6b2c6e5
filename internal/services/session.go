package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thestream/internal/domain"
)

type sessionService struct {
	issuer domain.TokenIssuer
	expiry time.Duration
}

// NewSessionService creates a SessionService issuing tokens valid for expiry.
func NewSessionService(issuer domain.TokenIssuer, expiry time.Duration) domain.SessionService {
	return &sessionService{issuer: issuer, expiry: expiry}
}

// Login issues a bearer token for the named user. There are no passwords:
// the identity is whatever name the client logs in with.
func (s *sessionService) Login(ctx context.Context, user string) (*domain.Session, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", domain.ErrInvalidInput)
	}
	token, expiresAt, err := s.issuer.Issue(user, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
