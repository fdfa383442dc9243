package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte(`{"id":"qr-1"}`))
	require.NoError(t, err)
	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 14, w.size)
	assert.Equal(t, "{\"id\":\"qr-1\"}\n", rr.Body.String())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("ok"))
	require.NoError(t, err)

	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 2, w.size)
}

func TestResponseWriter_FlushThroughController(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
