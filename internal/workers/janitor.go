// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/metrics"
)

const defaultJanitorInterval = time.Minute

// RefreshTokenJanitor periodically deletes expired refresh tokens.
type RefreshTokenJanitor struct {
	purger   RefreshTokenPurger
	interval time.Duration
	logger   *logger.Logger
}

func NewRefreshTokenJanitor(purger RefreshTokenPurger, interval time.Duration, logger *logger.Logger) *RefreshTokenJanitor {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	return &RefreshTokenJanitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (j *RefreshTokenJanitor) Run(ctx context.Context) {
	j.logger.Info().Dur("interval", j.interval).Msg("refresh token janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("refresh token janitor stopped")
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *RefreshTokenJanitor) purge(ctx context.Context) {
	purged, err := j.purger.PurgeExpiredRefreshTokens(ctx)
	if err != nil {
		j.logger.Err(err).Msg("error purging expired refresh tokens")
		return
	}

	metrics.RecordPurgedRefreshTokens(purged)
	if purged > 0 {
		j.logger.Debug().Int("purged", purged).Msg("expired refresh tokens purged")
	}
}
