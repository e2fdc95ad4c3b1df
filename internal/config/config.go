// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// dashboard client and the development backend. It is populated by merging
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the client session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the development backend listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the REST backend location used by the client. Its
	// variables carry no prefix so that API_BASE keeps its conventional name.
	Adapter Adapter

	// Workers holds background worker settings of the development backend.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file, set via
	// the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey is the HMAC key used by the backend to sign access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued access tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of an access token (e.g. "15m").
	// Env: APP_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of a refresh token (e.g. "24h").
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the client storage settings.
type Storage struct {
	// Session configures where the client keeps its tokens.
	Session Session `envPrefix:"SESSION_"`
}

// Session configures the client session store.
type Session struct {
	// Driver selects the store: "sqlite", "memory" or "none".
	// Env: STORAGE_SESSION_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the sqlite database file used by the "sqlite" driver.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Server holds the development backend listener settings.
type Server struct {
	// HTTPAddress is the "host:port" the backend listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the read and write time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the REST backend location used by the client.
type Adapter struct {
	// BaseURL is the backend base URL. Surrounding quotes are stripped and a
	// trailing slash is trimmed before use.
	// Env: API_BASE
	BaseURL string `env:"API_BASE"`

	// RequestTimeout is the timeout of a single outbound request. Zero keeps
	// the transport default.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT"`

	// RefreshPath is the path of the token refresh endpoint.
	// Env: API_REFRESH_PATH
	RefreshPath string `env:"API_REFRESH_PATH"`
}

// Workers holds background worker settings.
type Workers struct {
	// JanitorInterval is how often expired refresh tokens are purged.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources override non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// It returns the merged config and the positional arguments left after flag
// parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	builder := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := builder.build()
	return cfg, builder.args, err
}
