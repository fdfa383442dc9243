package handler

import (
	"errors"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/handler/http"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/prototype"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers are created")

// Handlers holds the routers for the listeners configured in config.Server.
// A nil field means that listener is disabled.
type Handlers struct {
	HTTP      *http.Handler
	Prototype *prototype.Handler
}

func NewHandlers(services *service.Services, hub *realtime.Hub, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, hub, cfg, logger)
	}
	if cfg.PrototypeAddress != "" {
		handlers.Prototype = prototype.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.Prototype == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
