// Package common defines shared constants and sentinel errors used across
// taskquest components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository / store level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrorUnauthorized   = errors.New("unauthorized")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenExpired     = errors.New("token expired")

	// Transport errors: the request never produced a server response.
	ErrUnavailable = errors.New("server unavailable")
)
