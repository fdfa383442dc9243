package adapter

import (
	"errors"
)

// Sentinel errors returned by adapters. Remote HTTP failures are mapped to
// these values by status code so callers can match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrRequestFailed wraps transport-level failures: refused connections,
	// timeouts and cancelled contexts.
	ErrRequestFailed = errors.New("request failed")

	// ErrInvalidResponse is returned when a remote service answered 2xx with
	// a body that cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrNotConfigured is returned by adapters whose credentials are missing.
	ErrNotConfigured = errors.New("adapter is not configured")
)

// IsTransient reports whether err is worth retrying: rate limiting, upstream
// 5xx answers and transport failures.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTooManyRequests) ||
		errors.Is(err, ErrInternalServerError) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrRequestFailed)
}
