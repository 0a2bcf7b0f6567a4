// Package common defines shared constants and sentinel errors used across
// client and server layers of TaskHub. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration errors.
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("e-mail already registered")

	// Login errors. A single variant covers both unknown e-mail and wrong
	// password so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Ownership errors (authenticated but not the resource owner).
	ErrForbidden = errors.New("forbidden")
)
