// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	// Session is the store selected by the configured session driver.
	Session SessionStore

	db *DB
}

// NewClientStorages initialises the client storage layer. For the sqlite
// driver it opens (creating when needed) the database file and runs the
// pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("driver", cfg.Session.Driver).Msg("creating new client storages...")

	switch cfg.Session.Driver {
	case config.SessionDriverNone:
		return &ClientStorages{Session: NewNopSessionStore()}, nil
	case config.SessionDriverMemory:
		return &ClientStorages{Session: NewMemorySessionStore(models.Session{})}, nil
	case config.SessionDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Session.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{
			Session: NewSQLiteSessionStore(db, log),
			db:      db,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionDriver, cfg.Session.Driver)
	}
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
