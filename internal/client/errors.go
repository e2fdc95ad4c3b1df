// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUsage is returned for missing or malformed command arguments. The
	// usage text is printed alongside.
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownCommand is returned for a command or sub-command that does
	// not exist.
	ErrUnknownCommand = errors.New("unknown command")
)
