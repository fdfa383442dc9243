package service

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrRateLimited = errors.New("too many submissions, try again later")

	ErrNoCNAE = errors.New("profile has no cnae")

	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image is too large")

	// ErrUpstreamUnavailable is returned when a third-party service used to
	// answer the request failed.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	ErrCheckoutNotConfigured = errors.New("checkout is not configured")
)
