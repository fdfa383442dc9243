package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/handler"
	"github.com/MKhiriev/veepo/internal/logger"
)

type server struct {
	servers []*httpServer
	logger  *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.servers = append(s.servers, newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), logger, handlers.HTTP.CloseStreams))
	}
	if cfg.PrototypeAddress != "" && handlers.Prototype != nil {
		s.servers = append(s.servers, newHTTPServer("prototype", cfg.PrototypeAddress, handlers.Prototype.Init(), logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("error running server")
	}
}

func (s *server) Shutdown() {
	var wg sync.WaitGroup
	for _, srv := range s.servers {
		wg.Go(srv.Shutdown)
	}
	wg.Wait()
}

func (s *server) run() error {
	if len(s.servers) == 0 {
		return errNoServersAreCreated
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	for _, srv := range s.servers {
		s.logger.Info().Str("server", srv.name).Msg("launching server")
		go srv.RunServer()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shutdown gracefully")

	return nil
}
