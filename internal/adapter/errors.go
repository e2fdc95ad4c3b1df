// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors for non-2xx statuses seen by [ServerAdapter]. Match with
// [errors.Is].
var (
	// ErrBadRequest is returned for 400 Bad Request, e.g. missing fields.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned for a 401 that survived the refresh cycle,
	// or for rejected login credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for 403 Forbidden.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for 404 Not Found.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for 409 Conflict, e.g. a taken username.
	ErrConflict = errors.New("conflict")

	// ErrInternalServerError is returned for 500 Internal Server Error.
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadGateway is returned for 502 Bad Gateway. Hosted backends answer
	// with it while cold-starting.
	ErrBadGateway = errors.New("bad gateway")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrNoAccessToken is returned when a login or registration response
	// carries no access token.
	ErrNoAccessToken = errors.New("response carries no access token")
)
