// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidIDParam is returned when an id path or query parameter is not
	// a positive integer.
	ErrInvalidIDParam = errors.New("invalid id parameter")
)

var (
	errInvalidJSON        = errors.New("invalid JSON was passed")
	errMissingItemIDParam = errors.New("missing id query parameter")
)
