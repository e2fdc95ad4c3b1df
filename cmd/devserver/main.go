// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/handler"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/metrics"
	"github.com/MKhiriev/go-admin-dashboard/internal/server"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/workers"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-admin-dashboard-devserver")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	metrics.RegisterMetrics()

	storages := store.NewStorages()
	services := service.NewServices(storages, cfg.App, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	janitor := workers.NewRefreshTokenJanitor(services.AuthService, cfg.Workers.JanitorInterval, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(janitor), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
