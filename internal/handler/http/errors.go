// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQuery is reported for malformed query parameters.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrMissingFile is reported when a multipart upload has no "file" part.
	ErrMissingFile = errors.New("multipart form has no file")

	// ErrStreamingUnsupported is reported when the response writer cannot
	// flush, so server-sent events cannot be delivered.
	ErrStreamingUnsupported = errors.New("streaming is not supported")
)
