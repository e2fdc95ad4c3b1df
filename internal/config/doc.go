// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the dashboard client and the development backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig], which build a
// validated view over [StructuredConfig] with defaults applied.
package config
