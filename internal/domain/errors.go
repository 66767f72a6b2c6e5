package domain

import "errors"

// Sentinel errors shared across services and delivery.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid or expired token")
)
