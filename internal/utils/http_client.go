// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

// HTTPClient embeds *resty.Client so its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client whose internal
// diagnostics are written to log. Request payloads are sent for every
// method, GET included.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetLogger(&restyLogger{log: log}).
		SetAllowGetMethodPayload(true)

	return &HTTPClient{Client: client}
}

// restyLogger adapts [logger.Logger] to [resty.Logger].
type restyLogger struct {
	log *logger.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msgf(format, v...)
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msgf(format, v...)
}
