package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/service"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrInvalidQuery: http.StatusBadRequest,
	ErrMissingFile:  http.StatusBadRequest,

	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	service.ErrRateLimited:             http.StatusTooManyRequests,
	service.ErrNoCNAE:                  http.StatusNotFound,
	service.ErrUnsupportedImageType:    http.StatusUnsupportedMediaType,
	service.ErrImageTooLarge:           http.StatusRequestEntityTooLarge,
	service.ErrUpstreamUnavailable:     http.StatusBadGateway,
	service.ErrCheckoutNotConfigured:   http.StatusServiceUnavailable,

	store.ErrNotFound:            http.StatusNotFound,
	store.ErrEmailAlreadyExists:  http.StatusConflict,
	store.ErrInvalidReference:    http.StatusBadRequest,
	store.ErrNoStorageConfigured: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. Server-side
// failures are reported with the generic status text only.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Send()
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Send()
	utils.WriteError(w, err.Error(), status)
}
