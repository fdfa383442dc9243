package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/veepo/internal/service"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation wraps field error", fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidEmail), http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"entity not found", fmt.Errorf("update: %w", store.ErrQRCodeNotFound), http.StatusNotFound},
		{"no cnae", service.ErrNoCNAE, http.StatusNotFound},
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"dangling reference", store.ErrInvalidReference, http.StatusBadRequest},
		{"rate limited", service.ErrRateLimited, http.StatusTooManyRequests},
		{"image too large", service.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
		{"unsupported image", service.ErrUnsupportedImageType, http.StatusUnsupportedMediaType},
		{"upstream", service.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"checkout off", service.ErrCheckoutNotConfigured, http.StatusServiceUnavailable},
		{"sql failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("conn reset")), http.StatusInternalServerError},
		{"malformed body", fmt.Errorf("%w: EOF", ErrInvalidJSON), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError_HidesServerErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rr := httptest.NewRecorder()
	writeServiceError(rr, req, "test", fmt.Errorf("%w: password=hunter2", store.ErrExecutingQuery))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	writeServiceError(rr, req, "test", service.ErrRateLimited)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"too many submissions, try again later"}`, rr.Body.String())
}
