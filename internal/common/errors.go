// Package common defines shared constants and sentinel errors used across
// the gophgate server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound    = errors.New("not found")
	ErrInvalidEnum = errors.New("invalid enum value")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")

	// Authentication and authorization errors.
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInactiveAccount    = errors.New("inactive account")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token errors. They never leave the identity resolver.
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenMalformed      = errors.New("token malformed")
	ErrTokenInvalidSubject = errors.New("token subject is invalid")

	// Registration errors.
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
	ErrEmailTaken    = errors.New("email already registered")
	ErrEmptyPassword = errors.New("password must not be empty")

	// Lifecycle errors.
	ErrInvalidState  = errors.New("user status is not PENDING")
	ErrInvalidStatus = errors.New("invalid status for rejection")

	// Configuration errors.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrEmptySecret          = errors.New("signing secret must not be empty")
)
