// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeJSONFile(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"access_token_duration": "15m",
			"refresh_token_duration": "24h",
			"log_level": "debug"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"adapter": {
			"base_url": "https://api.example.com",
			"request_timeout": 1000000000,
			"refresh_path": "/auth/refresh"
		},
		"storage": {
			"session": { "driver": "sqlite", "dsn": "/tmp/session.db" }
		},
		"workers": { "janitor_interval": "1m" }
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, 24*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/auth/refresh", cfg.Adapter.RefreshPath)
	assert.Equal(t, "sqlite", cfg.Storage.Session.Driver)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.Session.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.JanitorInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"app": `))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"server": {"request_timeout": "forever"}}`))

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{}`))

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
