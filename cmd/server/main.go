package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/dataset"
	"github.com/MKhiriev/go-pilot-logbook/internal/handler"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/server"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("logbook-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}
	log.Info().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()).Msg("starting logbook server")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	validator := validators.NewValidator()
	directories := service.Directories{
		Airports: dataset.NewAirportDirectory(cfg.Storage.Datasets.AirportsPath, cfg.Storage.Datasets.CacheTTL, validator, log),
		Aircraft: dataset.NewAircraftDirectory(cfg.Storage.Datasets.AircraftPath, cfg.Storage.Datasets.CacheTTL, validator, log),
	}

	services, err := service.NewServices(storages, directories, validator, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
