// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line runtime of the dashboard
// client.
//
// It turns positional arguments into calls on the client services and prints
// the results as indented JSON, or as raw text for non-JSON bodies.
package client
