// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/migrations"
)

// DB is a database handle shared by the sql-backed stores.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
