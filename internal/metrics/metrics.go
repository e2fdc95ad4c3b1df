// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the dashboard client and
// the development backend. Collectors register themselves with the default
// registry on first use.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Refresh outcomes recorded by [RecordRefresh].
const (
	RefreshSuccess        = "success"
	RefreshRejected       = "rejected"
	RefreshNoAccessToken  = "no_access_token"
	RefreshNoRefreshToken = "no_refresh_token"
	RefreshTransportError = "transport_error"
	RefreshShared         = "shared"
)

var (
	registerOnce sync.Once

	clientRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin_dashboard",
			Subsystem: "client",
			Name:      "token_refreshes_total",
			Help:      "Token refresh attempts triggered by a 401, by outcome.",
		},
		[]string{"outcome"},
	)
	clientRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin_dashboard",
			Subsystem: "client",
			Name:      "retries_total",
			Help:      "Requests re-issued after a refresh, by final status.",
		},
		[]string{"status"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin_dashboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served by the backend.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "admin_dashboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	purgedRefreshTokens = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "admin_dashboard",
			Subsystem: "workers",
			Name:      "purged_refresh_tokens_total",
			Help:      "Expired refresh tokens removed by the janitor.",
		},
	)
)

// RegisterMetrics registers all collectors with the default registry. It is
// safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(clientRefreshes, clientRetries, httpRequests, httpDuration, purgedRefreshTokens)
	})
}

// RecordRefresh counts one refresh attempt with the given outcome.
func RecordRefresh(outcome string) {
	RegisterMetrics()
	clientRefreshes.WithLabelValues(outcome).Inc()
}

// RecordRetry counts one re-issued request and the status it ended with.
func RecordRetry(status int) {
	RegisterMetrics()
	clientRetries.WithLabelValues(strconv.Itoa(status)).Inc()
}

// RecordHTTPRequest observes one request served by the backend.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordPurgedRefreshTokens adds n to the purged refresh token counter.
func RecordPurgedRefreshTokens(n int) {
	RegisterMetrics()
	purgedRefreshTokens.Add(float64(n))
}
