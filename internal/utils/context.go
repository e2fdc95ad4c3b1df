// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the client and the development
// backend: context keys, JSON response writing, the resty client wrapper,
// JWT generation and parsing, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the int64 id of the authenticated user.
	UserIDCtxKey = contextKey("userID")

	// TraceIDCtxKey holds the request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext returns the authenticated user id and whether it was
// present with the expected int64 type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTraceIDFromContext returns the request trace id, or "" when absent.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
