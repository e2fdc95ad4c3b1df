// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

var (
	selectTokenQuery = regexp.QuoteMeta("SELECT token_value FROM session_tokens WHERE token_key = ?")
	upsertTokenQuery = regexp.QuoteMeta("INSERT INTO session_tokens (token_key,token_value) VALUES (?,?) ON CONFLICT(token_key)")
	deleteTokenQuery = regexp.QuoteMeta("DELETE FROM session_tokens WHERE token_key IN (?,?)")
)

func newTestSQLiteSessionStore(t *testing.T) (SessionStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSQLiteSessionStore(&DB{DB: db, logger: l}, l), mock
}

func TestSQLiteSessionStore_Get(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectQuery(selectTokenQuery).
		WithArgs(accessTokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"token_value"}).AddRow("access-1"))

	token, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_GetRefresh_Absent(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectQuery(selectTokenQuery).
		WithArgs(refreshTokenKey).
		WillReturnError(sql.ErrNoRows)

	token, err := s.GetRefresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Get_QueryError(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectQuery(selectTokenQuery).
		WithArgs(accessTokenKey).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteSessionStore_Save_BothTokens(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertTokenQuery).
		WithArgs(accessTokenKey, "access-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertTokenQuery).
		WithArgs(refreshTokenKey, "refresh-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background(), "access-2", "refresh-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Save_KeepsRefreshWhenEmpty(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertTokenQuery).
		WithArgs(accessTokenKey, "access-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background(), "access-3", ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Save_ExecErrorRollsBack(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertTokenQuery).
		WithArgs(accessTokenKey, "access-4").
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := s.Save(context.Background(), "access-4", "refresh-4")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Save_BeginError(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := s.Save(context.Background(), "a", "r")
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSQLiteSessionStore_Save_CommitError(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertTokenQuery).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := s.Save(context.Background(), "a", "")
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestSQLiteSessionStore_Clear(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectExec(deleteTokenQuery).
		WithArgs(accessTokenKey, refreshTokenKey).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, s.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Clear_Error(t *testing.T) {
	s, mock := newTestSQLiteSessionStore(t)

	mock.ExpectExec(deleteTokenQuery).WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, s.Clear(context.Background()), ErrExecutingStatement)
}
