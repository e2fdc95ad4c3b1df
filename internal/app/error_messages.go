// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings written into error bodies by the
// development backend. The client matches on the same strings to turn error
// responses back into typed errors, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgCredentialsRequired is returned when a login or registration request
	// lacks the username or the password.
	MsgCredentialsRequired = "username and password are required"

	// MsgInvalidLoginPassword is returned when the username/password pair
	// does not match an account.
	MsgInvalidLoginPassword = "invalid username or password"

	// MsgLoginAlreadyExists is returned when the requested username is taken.
	MsgLoginAlreadyExists = "login already exists"

	// MsgMissingAuthorization is returned for a protected route requested
	// without a bearer token.
	MsgMissingAuthorization = "missing authorization token"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token fails
	// verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgRefreshTokenRequired is returned by the refresh endpoint for an
	// empty refresh token.
	MsgRefreshTokenRequired = "refresh token is required"

	// MsgRefreshTokenInvalid is returned for an unknown, used or expired
	// refresh token.
	MsgRefreshTokenInvalid = "refresh token is expired or invalid"

	// MsgInvalidID is returned when a path or query id is not a positive
	// integer.
	MsgInvalidID = "invalid id"

	// MsgUserNotFound is returned when no user has the requested id.
	MsgUserNotFound = "user not found"

	// MsgPositionFieldsRequired is returned when a position lacks its code or
	// name.
	MsgPositionFieldsRequired = "position_code and position_name are required"

	// MsgPositionNotFound is returned when no position has the requested id.
	MsgPositionNotFound = "position not found"

	// MsgPositionCodeExists is returned when a position code is taken.
	MsgPositionCodeExists = "position code already exists"

	// MsgItemFieldsRequired is returned when an item is created without a
	// name or a description.
	MsgItemFieldsRequired = "Name and description are required"

	// MsgItemIDRequired is returned when an item update or delete lacks the
	// id.
	MsgItemIDRequired = "ID is required"

	// MsgItemNotFound is returned when no item has the requested id.
	MsgItemNotFound = "Item not found"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "internal server error"
)
