// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/tui"
	"github.com/MKhiriev/go-pilot-logbook/internal/workers"
	"github.com/google/uuid"
)

var (
	ErrNoServices = errors.New("client services are not provided")
	ErrNoUI       = errors.New("user interface is not provided")
)

// App runs the sign in screens, hydrates the preferences of the signed-in
// user, keeps them fresh in the background and hands control to the main
// screens until the user quits.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  cfg,
		logger:   logger,
	}, nil
}

// Run blocks until the user quits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	log := a.logger.With().Str("func", "*App.run").Logger()

	for {
		userID, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.session(ctx, userID)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		log.Info().Msg("user signed out")
	}
}

// session runs the main screens for one signed-in user.
func (a *App) session(ctx context.Context, userID uuid.UUID) (bool, error) {
	log := a.logger.With().Str("func", "*App.session").Str("user_id", userID.String()).Logger()

	// Defaults stay in place when the server cannot be reached; the refresh
	// job retries.
	if err := a.services.PreferencesProvider.Init(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("failed to load preferences")
	}

	background := workers.NewWorkers(
		workers.NewPeriodicWorker(ctx, a.services.RefreshJob, a.workers.PreferencesRefreshInterval),
	)
	background.Run()
	defer background.Stop()

	logout, err := a.ui.MainLoop(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
