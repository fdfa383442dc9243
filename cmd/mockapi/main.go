package main

import (
	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/handler"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/server"
)

func main() {
	log := logger.NewLogger("veepo-mockapi")

	cfg, err := config.GetPrototypeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handlers, err := handler.NewHandlers(nil, nil, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
