// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		LogLevel             string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Session struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RefreshPath    string   `json:"refresh_path"`
	} `json:"adapter,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			LogLevel:             jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Session: Session{
				Driver: jsonCfg.Storage.Session.Driver,
				DSN:    jsonCfg.Storage.Session.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RefreshPath:    jsonCfg.Adapter.RefreshPath,
		},
		Workers: Workers{
			JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
