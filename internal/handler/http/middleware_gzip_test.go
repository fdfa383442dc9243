// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

// echo writes back the request body prefixed with the method.
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(r.Method + ":" + string(body)))
})

func TestWithGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "plain gzip", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among others", acceptEncoding: "br, deflate, gzip", wantGzip: true},
		{name: "quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzip: true},
		{name: "no header", acceptEncoding: ""},
		{name: "other encoding only", acceptEncoding: "br"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/feedbacks", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			if !tt.wantGzip {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "GET:", rr.Body.String())
				return
			}
			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			assert.Equal(t, "GET:", gunzip(t, rr.Body))
		})
	}
}

func TestWithGZip_DecodesRequestBody(t *testing.T) {
	payload := `{"name":"Mesa 12","location":"Carazinho"}`
	req := httptest.NewRequest(http.MethodPost, "/api/qr-codes", bytes.NewReader(gzipBytes(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	var sawEncoding string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawEncoding = r.Header.Get("Content-Encoding")
		echo(w, r)
		require.NoError(t, r.Body.Close())
	})

	rr := httptest.NewRecorder()
	withGZip(handler).ServeHTTP(rr, req)

	assert.Empty(t, sawEncoding, "decoded body is no longer gzip")
	assert.Equal(t, "POST:"+payload, gunzip(t, rr.Body))
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/public/qr-codes/qr-1/feedbacks", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(handler).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid gzip data")
}

func TestWithGZip_BodilessStatuses(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})

			req := httptest.NewRequest(http.MethodDelete, "/api/qr-codes/qr-1", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			withGZip(handler).ServeHTTP(rr, req)

			assert.Equal(t, status, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Zero(t, rr.Body.Len())
		})
	}
}

func TestWithGZip_FlushSendsCompressedChunk(t *testing.T) {
	var flushedLen int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("event: feedbacks\n\n"))
		require.NoError(t, http.NewResponseController(w).Flush())
		flushedLen = w.(*gzipResponseWriter).ResponseWriter.(*httptest.ResponseRecorder).Body.Len()
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(handler).ServeHTTP(rr, req)

	assert.True(t, rr.Flushed)
	assert.Positive(t, flushedLen, "bytes reach the client before the handler returns")
	assert.Equal(t, "event: feedbacks\n\n", gunzip(t, rr.Body))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := 0
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed++ }}
	require.NoError(t, rc.Close())
	assert.Equal(t, 1, closed)

	require.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
