// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

const (
	sessionTokensTable = "session_tokens"
	tokenKeyColumn     = "token_key"
	tokenValueColumn   = "token_value"

	accessTokenKey  = "accessToken"
	refreshTokenKey = "refreshToken"
)

const upsertTokenSuffix = "ON CONFLICT(token_key) DO UPDATE SET token_value = excluded.token_value, updated_at = CURRENT_TIMESTAMP"

// sqliteSessionStore keeps the session tokens in a key/value table of the
// client-local sqlite database.
type sqliteSessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSessionStore returns a [SessionStore] backed by the
// session_tokens table of db. The schema must already be migrated.
func NewSQLiteSessionStore(db *DB, log *logger.Logger) SessionStore {
	return &sqliteSessionStore{
		db:     db,
		logger: log,
	}
}

func (s *sqliteSessionStore) Save(ctx context.Context, accessToken, refreshToken string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.Save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = s.upsert(ctx, tx, accessTokenKey, accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		if err = s.upsert(ctx, tx, refreshTokenKey, refreshToken); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.Save").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteSessionStore) Get(ctx context.Context) (string, error) {
	return s.get(ctx, accessTokenKey)
}

func (s *sqliteSessionStore) GetRefresh(ctx context.Context) (string, error) {
	return s.get(ctx, refreshTokenKey)
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	query, args, err := sq.Delete(sessionTokensTable).
		Where(sq.Eq{tokenKeyColumn: []string{accessTokenKey, refreshTokenKey}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.Clear").Msg("error deleting session tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select(tokenValueColumn).
		From(sessionTokensTable).
		Where(sq.Eq{tokenKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		s.logger.Err(err).Str("func", "*sqliteSessionStore.get").Str("key", key).Msg("error reading session token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteSessionStore) upsert(ctx context.Context, tx *sql.Tx, key, value string) error {
	query, args, err := sq.Insert(sessionTokensTable).
		Columns(tokenKeyColumn, tokenValueColumn).
		Values(key, value).
		Suffix(upsertTokenSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.upsert").Str("key", key).Msg("error saving session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
