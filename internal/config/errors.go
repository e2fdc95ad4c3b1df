// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates an unusable backend base URL or a
	// negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown session driver or a
	// sqlite driver without a database file.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings on the backend.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
