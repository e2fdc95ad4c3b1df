// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/metrics"
)

// withLogging writes one access log entry per request and records it in the
// request metrics, labelled by the matched route pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		metrics.RecordHTTPRequest(method, routePattern(r), status, duration)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// routePattern returns the chi pattern that served r, keeping the metric
// label cardinality bounded.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
