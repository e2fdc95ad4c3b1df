// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/handler"
	"github.com/MKhiriev/go-admin-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/internal/workers"
)

type countingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.started.Add(1)
	<-ctx.Done()
	w.stopped.Add(1)
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: http.NewHandler(&service.Services{}, logger.Nop())}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(), nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: 3 * time.Second}

	srv, err := NewServer(testHandlers(), nil, cfg, logger.Nop())
	require.NoError(t, err)

	httpSrv := srv.(*server).httpServer.server
	assert.Equal(t, "localhost:0", httpSrv.Addr)
	assert.Equal(t, 3*time.Second, httpSrv.ReadTimeout)
	assert.Equal(t, 3*time.Second, httpSrv.WriteTimeout)
	assert.Equal(t, defaultReadHeaderTimeout, httpSrv.ReadHeaderTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	worker := &countingWorker{}
	srv, err := NewServer(testHandlers(), workers.NewWorkers(worker), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool { return worker.started.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, int32(1), worker.stopped.Load())
}

func TestRun_ListenErrorStopsWorkers(t *testing.T) {
	worker := &countingWorker{}
	srv, err := NewServer(testHandlers(), workers.NewWorkers(worker), config.Server{HTTPAddress: "no-port-here"}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())

	assert.Error(t, err)
	assert.Equal(t, worker.started.Load(), worker.stopped.Load())
}
