package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		wantMsg string
	}{
		{name: "ok", status: http.StatusOK, body: `{}`},
		{name: "no content", status: http.StatusNoContent},
		{name: "json error body", status: http.StatusNotFound, body: `{"error":"qr code not found"}`, want: ErrNotFound, wantMsg: "qr code not found"},
		{name: "plain body", status: http.StatusConflict, body: "email already exists\n", want: ErrConflict, wantMsg: "email already exists"},
		{name: "empty body", status: http.StatusUnauthorized, want: ErrUnauthorized, wantMsg: "Unauthorized"},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, want: ErrServiceUnavailable},
		{name: "other 5xx", status: http.StatusHTTPVersionNotSupported, want: ErrInternalServerError, wantMsg: "http 505"},
		{name: "other 4xx", status: http.StatusTeapot, wantMsg: "http 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := resty.New().R().SetContext(context.Background()).Get(srv.URL)
			require.NoError(t, err)

			err = mapHTTPError(resp)
			if tt.want == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
