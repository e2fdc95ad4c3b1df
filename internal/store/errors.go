// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same username
	// already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPositionNotFound is returned when no position matches the id.
	ErrPositionNotFound = errors.New("position was not found")

	// ErrPositionCodeExists is returned when a position code is already used.
	ErrPositionCodeExists = errors.New("position code already exists")

	// ErrItemNotFound is returned when no item matches the id.
	ErrItemNotFound = errors.New("item not found")

	// ErrRefreshTokenNotFound is returned when a refresh token is unknown or
	// was already exchanged.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")

	// ErrUnknownSessionDriver is returned for an unsupported session store
	// driver name.
	ErrUnknownSessionDriver = errors.New("unknown session store driver")
)

// Low-level database operation errors of the sqlite session store.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
