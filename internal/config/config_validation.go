// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.Session.Driver {
	case SessionDriverSQLite:
		if cfg.Storage.Session.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case SessionDriverMemory, SessionDriverNone:
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.AccessTokenDuration < 0 || cfg.App.RefreshTokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.JanitorInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
