// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Adapter: Adapter{BaseURL: "http://env.example.com", RequestTimeout: time.Second},
			App:     App{TokenSignKey: "env-key"},
		},
		&StructuredConfig{
			Adapter: Adapter{BaseURL: "http://flag.example.com"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"API_BASE": "http://env.example.com"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env.example.com", b.configs[0].Adapter.BaseURL)
}

func TestWithFlags_KeepsPositionalArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-log-level", "info", "logout"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, []string{"logout"}, b.args)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	p := writeJSONFile(t, `{"adapter": {"base_url": "http://json.example.com"}}`)
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json.example.com", b.configs[1].Adapter.BaseURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_BASE":           "http://env.example.com",
		"APP_TOKEN_SIGN_KEY": "env-key",
	})

	cfg, rest, err := GetStructuredConfig([]string{"-api-base", "http://flag.example.com", "status"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, []string{"status"}, rest)
}
