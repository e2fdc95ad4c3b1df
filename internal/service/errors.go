// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required input is missing or
	// malformed.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrCredentialsRequired is returned when the username or the password
	// is empty after trimming.
	ErrCredentialsRequired = errors.New("username and password are required")

	// ErrWrongPassword is returned when the credentials do not match an
	// account. Unknown usernames map to it as well.
	ErrWrongPassword = errors.New("wrong username or password")

	// ErrTokenCreationFailed is returned when an access or refresh token
	// cannot be issued.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned when a bearer token fails
	// verification.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRefreshTokenRequired is returned for an empty refresh token.
	ErrRefreshTokenRequired = errors.New("refresh token is required")

	// ErrRefreshTokenInvalid is returned for an unknown, already used or
	// expired refresh token.
	ErrRefreshTokenInvalid = errors.New("refresh token is expired or invalid")

	// ErrInvalidID is returned for a non-positive id.
	ErrInvalidID = errors.New("invalid id")

	// ErrPositionFieldsRequired is returned when a position lacks its code or
	// name.
	ErrPositionFieldsRequired = errors.New("position code and name are required")

	// ErrItemFieldsRequired is returned when an item is created without a
	// name or a description.
	ErrItemFieldsRequired = errors.New("name and description are required")

	// ErrItemIDRequired is returned when an item update lacks the id.
	ErrItemIDRequired = errors.New("item id is required")

	// ErrNotLoggedIn is returned by client operations that need a stored
	// session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSessionExpired is returned by client operations when the backend
	// still answers 401 after the refresh cycle.
	ErrSessionExpired = errors.New("session expired, please log in again")
)
