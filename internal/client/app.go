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

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/internal/tui"
	"github.com/MKhiriev/go-plant-keeper/internal/workers"
)

var (
	errNoClientServices = errors.New("client services are not provided")
	errNoUI             = errors.New("ui is not provided")
)

type App struct {
	plants service.ClientPlantService
	ui     UI
	cfg    config.ClientWorkers
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.PlantService == nil {
		return nil, errNoClientServices
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{
		plants: services.PlantService,
		ui:     ui,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Run blocks until the user quits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	for {
		signedIn, err := a.plants.Restore(ctx)
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}

		if !signedIn {
			if err = a.ui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		logout, err := a.session(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		// the session may have expired on the server; forget the token so the
		// next iteration asks for credentials
		if err = a.plants.SignOut(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.run").Msg("local session was not cleared")
		}
		a.logger.Info().Msg("signed out")
	}
}

// session runs the main screens with the refresh worker alive.
func (a *App) session(ctx context.Context) (bool, error) {
	workerCtx, cancel := context.WithCancel(ctx)
	ws := workers.NewWorkers(
		workers.NewRefreshWorker(a.plants, a.cfg.RefreshInterval, a.ui.Notify, a.logger),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ws.Run(workerCtx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	return a.ui.MainLoop(ctx)
}
