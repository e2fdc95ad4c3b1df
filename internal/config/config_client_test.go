// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "empty uses default", raw: "", want: DefaultAPIBase},
		{name: "trailing slash trimmed", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "surrounding quotes stripped", raw: `"https://api.example.com/"`, want: "https://api.example.com"},
		{name: "quoted empty uses default", raw: `""`, want: DefaultAPIBase},
		{name: "missing scheme defaults to http", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "path is kept", raw: "http://localhost:8080/api/", want: "http://localhost:8080/api"},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClientConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	cfg, err := NewClientConfig(&StructuredConfig{})
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBase, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRefreshPath, cfg.Adapter.RefreshPath)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, SessionDriverSQLite, cfg.Storage.Session.Driver)
	assert.Equal(t, filepath.Join("/xdg", "go-admin-dashboard", "session.db"), cfg.Storage.Session.DSN)
}

func TestNewClientConfig_Mapping(t *testing.T) {
	cfg, err := NewClientConfig(&StructuredConfig{
		App: App{LogLevel: "info"},
		Adapter: Adapter{
			BaseURL:        `"http://localhost:8080/"`,
			RequestTimeout: 3 * time.Second,
			RefreshPath:    "token/refresh",
		},
		Storage: Storage{Session: Session{Driver: "Memory"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/token/refresh", cfg.Adapter.RefreshPath)
	assert.Equal(t, SessionDriverMemory, cfg.Storage.Session.Driver)
	assert.Empty(t, cfg.Storage.Session.DSN)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown driver",
			cfg:     &StructuredConfig{Storage: Storage{Session: Session{Driver: "redis"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unparsable base url",
			cfg:     &StructuredConfig{Adapter: Adapter{BaseURL: "http://"}},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientConfig(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg, err := NewServerConfig(&StructuredConfig{App: App{TokenSignKey: "secret"}})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "go-admin-dashboard", cfg.App.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, 24*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, time.Minute, cfg.Workers.JanitorInterval)
}

func TestNewServerConfig_MissingSignKey(t *testing.T) {
	_, err := NewServerConfig(&StructuredConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
