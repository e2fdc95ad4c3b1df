// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations of the client-local sqlite
// session database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when no connection is supplied.
var ErrNilDB = errors.New("db is nil")

// Migrate applies all pending migrations to db.
func Migrate(db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
