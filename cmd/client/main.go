package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/veepo/internal/app"
	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("veepo-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("veepo-client", cfg.LogFile)
	buildInfo := models.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}

	client, err := app.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = client.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
