// Package common defines shared sentinel errors used across the guest book
// service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors (absent, malformed or expired token; failed login).
	ErrorMissingToken       = errors.New("missing token")
	ErrorInvalidToken       = errors.New("invalid token")
	ErrorTokenExpired       = errors.New("token expired")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Upload rejection errors.
	ErrorUnsupportedMedia = errors.New("unsupported media type")
	ErrorPayloadTooLarge  = errors.New("payload too large")
)
