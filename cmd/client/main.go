package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/adapter"
	"github.com/MKhiriev/go-pilot-logbook/internal/client"
	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("logbook-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("logbook-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, validators.NewValidator(), log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Println(err)
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
