package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"thestream/internal/domain"
)

const tokenIssuer = "thestream"

type jwtClaims struct {
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 session tokens. The subject claim
// carries the user identity.
type JWTManager struct {
	secret []byte
	now    func() time.Time
}

// NewJWTManager returns a JWTManager signing with the given secret.
func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret), now: time.Now}
}

var (
	_ domain.TokenIssuer   = (*JWTManager)(nil)
	_ domain.TokenVerifier = (*JWTManager)(nil)
)

func (m *JWTManager) Issue(user string, expiry time.Duration) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(expiry)
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify returns the subject of a valid token. Any parse, signature, method
// or expiry failure is reported as domain.ErrInvalidToken.
func (m *JWTManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", errors.Join(domain.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
