package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/veepo/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	name   string
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer builds a named server. onShutdown hooks run when Shutdown
// starts, before idle connections are drained; long-lived streams use them
// to return.
func newHTTPServer(name, addr string, handler http.Handler, logger *logger.Logger, onShutdown ...func()) *httpServer {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	for _, f := range onShutdown {
		srv.RegisterOnShutdown(f)
	}

	return &httpServer{
		name:   name,
		server: srv,
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Msg("listening")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "httpServer.RunServer").Str("server", h.name).Msg("ListenAndServe failed")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "httpServer.Shutdown").Str("server", h.name).Msg("shutdown failed")
	}
}
