// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress        = "localhost:8080"
	defaultTokenIssuer          = "go-admin-dashboard"
	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 24 * time.Hour
	defaultJanitorInterval      = time.Minute
)

// ServerApp holds token settings of the development backend.
type ServerApp struct {
	TokenSignKey         string
	TokenIssuer          string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	LogLevel             string
}

// ServerConfig is the development backend view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Workers Workers
}

// GetServerConfig builds and validates the backend view of the merged
// configuration from the process arguments.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

// NewServerConfig maps cfg onto a [ServerConfig], applies defaults and
// validates the result.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:         cfg.App.TokenSignKey,
			TokenIssuer:          cfg.App.TokenIssuer,
			AccessTokenDuration:  cfg.App.AccessTokenDuration,
			RefreshTokenDuration: cfg.App.RefreshTokenDuration,
			LogLevel:             cfg.App.LogLevel,
		},
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerAddress
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.App.AccessTokenDuration == 0 {
		serverCfg.App.AccessTokenDuration = defaultAccessTokenDuration
	}
	if serverCfg.App.RefreshTokenDuration == 0 {
		serverCfg.App.RefreshTokenDuration = defaultRefreshTokenDuration
	}
	if serverCfg.Workers.JanitorInterval == 0 {
		serverCfg.Workers.JanitorInterval = defaultJanitorInterval
	}

	return serverCfg, serverCfg.validate()
}
