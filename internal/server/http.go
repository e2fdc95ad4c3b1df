// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	shutdownTimeout          = 10 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           router,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}
	if cfg.RequestTimeout > 0 {
		srv.ReadTimeout = cfg.RequestTimeout
		srv.WriteTimeout = cfg.RequestTimeout
	}

	return &httpServer{
		server: srv,
		logger: logger,
	}
}

// serve blocks until the server stops. A stop caused by Shutdown is not an
// error.
func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) RunServer() {
	if err := h.serve(); err != nil {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
