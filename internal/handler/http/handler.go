package http

import (
	"time"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *realtime.Hub

	requestTimeout time.Duration
	keepAlive      time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *realtime.Hub, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hub:            hub,
		requestTimeout: cfg.RequestTimeout,
		keepAlive:      defaultKeepAlive,
		logger:         logger,
	}
}

// CloseStreams ends every open realtime stream. The server calls it on
// shutdown so that long-lived connections do not hold up draining.
func (h *Handler) CloseStreams() {
	if h.hub != nil {
		h.hub.Close()
	}
}
