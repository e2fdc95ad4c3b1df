// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "any interface", input: ":8081", expectedAddr: NetAddress{Port: 8081}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non numeric port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "invalid ip", input: "example:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantRest []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-request-timeout", "30s",
				"-api-base", "http://localhost:8080",
				"-api-timeout", "5s",
				"-refresh-path", "/token/refresh",
				"-session-driver", "memory",
				"-session-dsn", "/tmp/s.db",
				"-token-sign-key", "jwt_secret",
				"-token-issuer", "test_issuer",
				"-access-token-duration", "1m",
				"-refresh-token-duration", "1h",
				"-janitor-interval", "10s",
				"-log-level", "info",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "/token/refresh", cfg.Adapter.RefreshPath)
				assert.Equal(t, "memory", cfg.Storage.Session.Driver)
				assert.Equal(t, "/tmp/s.db", cfg.Storage.Session.DSN)
				assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
				assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
				assert.Equal(t, time.Minute, cfg.App.AccessTokenDuration)
				assert.Equal(t, time.Hour, cfg.App.RefreshTokenDuration)
				assert.Equal(t, 10*time.Second, cfg.Workers.JanitorInterval)
				assert.Equal(t, "info", cfg.App.LogLevel)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name:     "positional command is returned",
			args:     []string{"-api-base", "localhost:9000", "users", "get", "7"},
			wantRest: []string{"users", "get", "7"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:9000", cfg.Adapter.BaseURL)
			},
		},
		{
			name:     "no flags",
			args:     []string{},
			wantRest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.wantRest != nil {
				assert.Equal(t, tt.wantRest, rest)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid duration", args: []string{"-api-timeout", "later"}},
		{name: "unknown flag", args: []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
