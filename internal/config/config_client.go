// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultAPIBase is used when no backend base URL is configured.
	DefaultAPIBase = "https://ela-gqf5.onrender.com"
	// DefaultRefreshPath is the token refresh endpoint of the backend.
	DefaultRefreshPath = "/auth/refresh"

	// Session store drivers.
	SessionDriverSQLite = "sqlite"
	SessionDriverMemory = "memory"
	SessionDriverNone   = "none"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the normalised backend base URL without a trailing slash.
	BaseURL string
	// RequestTimeout is the timeout for outbound requests; zero keeps the
	// transport default.
	RequestTimeout time.Duration
	// RefreshPath is the path of the refresh endpoint, relative to BaseURL.
	RefreshPath string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Session holds the session store settings.
	Session ClientSession
}

// ClientSession selects and configures the client session store.
type ClientSession struct {
	// Driver is one of SessionDriverSQLite, SessionDriverMemory or
	// SessionDriverNone.
	Driver string
	// DSN is the sqlite database file for SessionDriverSQLite.
	DSN string
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogLevel is the minimum log level of the client logger.
	LogLevel string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client view of the merged
// configuration. args are the process arguments without the program name;
// the positional arguments left after flag parsing are returned alongside.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg, err := NewClientConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	return clientCfg, rest, nil
}

// NewClientConfig maps cfg onto a [ClientConfig], applies defaults and
// validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	baseURL, err := NormalizeBaseURL(cfg.Adapter.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	refreshPath := strings.TrimSpace(cfg.Adapter.RefreshPath)
	if refreshPath == "" {
		refreshPath = DefaultRefreshPath
	}
	if !strings.HasPrefix(refreshPath, "/") {
		refreshPath = "/" + refreshPath
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Session.Driver))
	if driver == "" {
		driver = SessionDriverSQLite
	}
	dsn := cfg.Storage.Session.DSN
	if driver == SessionDriverSQLite && dsn == "" {
		dsn = DefaultSessionDSN()
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			BaseURL:        baseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RefreshPath:    refreshPath,
		},
		Storage: ClientStorage{
			Session: ClientSession{
				Driver: driver,
				DSN:    dsn,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}

// NormalizeBaseURL turns a configured base URL into the form used for
// request building. Empty input yields [DefaultAPIBase]. Surrounding quotes
// and whitespace are stripped, a missing scheme defaults to http and trailing
// slashes are trimmed.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultAPIBase
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// DefaultSessionDSN returns the sqlite session file under the user's config
// directory ($XDG_CONFIG_HOME or ~/.config), or a file in the working
// directory when no home directory is known.
func DefaultSessionDSN() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "session.db"
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "go-admin-dashboard", "session.db")
}
