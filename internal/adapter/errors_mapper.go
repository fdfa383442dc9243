package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrServiceUnavailable,
}

// mapHTTPError turns a non-2xx response into a sentinel error carrying the
// server message. The API answers errors as {"error": "..."}; any other body
// is used verbatim.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	if code > http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, code, msg)
	}
	return fmt.Errorf("http %d: %s", code, msg)
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}

func requestError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRequestFailed, err)
}
