// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/handler"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. background workers run for
// as long as the server does; it may be nil.
func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    background,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails, then shuts the server
// down and waits for the workers to stop.
func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			s.workers.Run(ctx)
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("HTTP server ListenAndServe: %w", err)
		}
	}

	cancel()
	<-workersDone

	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}
