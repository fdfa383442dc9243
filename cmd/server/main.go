package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/handler"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/ratelimit"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/server"
	"github.com/MKhiriev/veepo/internal/service"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("veepo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	// the prototype service runs from cmd/mockapi
	cfg.Server.PrototypeAddress = ""

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	hub := realtime.NewHub(newBroker(cfg, storages, log), log)
	defer hub.Close()

	var analyzer adapter.SentimentAnalyzer
	if a, err := adapter.NewSentimentAnalyzer(cfg.Adapter.Sentiment, log); err != nil {
		log.Warn().Err(err).Msg("sentiment analysis disabled")
	} else {
		analyzer = a
	}

	var checkout adapter.CheckoutProvider
	if c, err := adapter.NewCheckoutProvider(cfg.Adapter.Checkout, cfg.App.PublicURL, log); err != nil {
		log.Warn().Err(err).Msg("checkout disabled")
	} else {
		checkout = c
	}

	sentimentJob := workers.NewSentimentJob(storages.FeedbackRepository, analyzer, hub, storages.DB.IsRetryable, cfg.Workers, log)

	services, err := service.NewServices(storages, service.Dependencies{
		Publisher: hub,
		Limiter:   newLimiter(cfg, storages),
		Sentiment: sentimentJob,
		Checkout:  checkout,
		Geo:       adapter.NewGeoProvider(cfg.Adapter.Geo),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, hub, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(sentimentJob)
	jobs.Start(ctx)
	defer jobs.Stop()

	srv.RunServer()
}

func newBroker(cfg *config.StructuredConfig, storages *store.Storages, log *logger.Logger) realtime.Broker {
	if cfg.Realtime.Broker == config.BrokerRedis && storages.Redis != nil {
		log.Info().Msg("using redis realtime broker")
		return realtime.NewRedisBroker(storages.Redis, log)
	}
	return realtime.NewMemoryBroker(log)
}

func newLimiter(cfg *config.StructuredConfig, storages *store.Storages) ratelimit.Limiter {
	limits := ratelimit.Config{
		Limit:     cfg.RateLimit.Requests,
		Window:    cfg.RateLimit.Window,
		KeyPrefix: "veepo:ratelimit:",
	}
	if storages.Redis != nil {
		return ratelimit.NewRedisLimiter(storages.Redis, limits)
	}
	return ratelimit.NewMemoryLimiter(limits)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
