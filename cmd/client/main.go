// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-admin-dashboard/internal/adapter"
	"github.com/MKhiriev/go-admin-dashboard/internal/client"
	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-admin-dashboard-client")

	if err := run(log); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log.SetLevel(cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing local storage")
		}
	}()

	httpClient := adapter.NewClient(cfg.Adapter, storages.Session, log)
	serverAdapter := adapter.NewHTTPServerAdapter(httpClient, log)
	services := service.NewClientServices(storages.Session, serverAdapter, log)

	app := client.NewApp(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)

	return app.Run(ctx, args)
}
