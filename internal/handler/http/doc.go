// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the development backend.
//
// It exposes route wiring, request handlers, and middleware for the auth,
// users, positions and items endpoints the dashboard client talks to.
// Request tracing, access logging, request metrics and bearer token checks
// are handled in this package before requests reach the service layer.
package http
