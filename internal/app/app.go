// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the terminal client together and runs its
// sign-in / dashboard loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/tui"
	"github.com/MKhiriev/veepo/models"
)

// UI is the part of the terminal UI the loop drives.
type UI interface {
	LoginFlow(ctx context.Context) error
	MainLoop(ctx context.Context) (logout bool, err error)
}

// App drives one terminal session: restore or sign in, then the main
// dashboard loop until the user quits.
type App struct {
	runtime *client.Runtime
	ui      UI
	closers []func() error
	logger  *logger.Logger
}

// NewApp opens the local cache and builds the API client, the realtime
// stream and the UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.BuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewAPIClient(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	sessionStore := session.NewStore()
	hub := realtime.NewHub(adapter.NewStreamBroker(cfg.Adapter, sessionStore.Token, log), log)
	rt := client.NewRuntime(ctx, api, hub, sessionStore, storages, log)

	ui, err := tui.New(rt, buildInfo, log)
	if err != nil {
		rt.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(rt, ui, log, storages.Close), nil
}

func newApp(rt *client.Runtime, ui UI, log *logger.Logger, closers ...func() error) *App {
	return &App{runtime: rt, ui: ui, closers: closers, logger: log}
}

// Run blocks until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.close()

	return a.run(ctx)
}

// run restores or asks for a session, shows the dashboard and starts over
// after a sign-out.
func (a *App) run(ctx context.Context) error {
	for {
		restored, err := a.runtime.Auth.Restore(ctx)
		if err != nil {
			a.logger.Err(err).Str("func", "App.run").Msg("failed to restore session")
		}

		if !restored {
			if err = a.ui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("login: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("signing out")
		a.runtime.Logout(ctx)
	}
}

func (a *App) close() {
	a.runtime.Close()
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Err(err).Str("func", "App.close").Msg("failed to release resources")
		}
	}
}
