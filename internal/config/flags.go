// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags found in args and returns the
// resulting config together with the remaining positional arguments.
//
// Flags:
//
//	-a                       backend listen address in format [host]:[port]
//	-request-timeout         backend request timeout (e.g. "30s")
//	-api-base                REST backend base URL used by the client
//	-api-timeout             client request timeout (e.g. "10s")
//	-refresh-path            token refresh endpoint path
//	-session-driver          session store driver: sqlite, memory, none
//	-session-dsn             sqlite session database file
//	-token-sign-key          access token signing key
//	-token-issuer            access token issuer name
//	-access-token-duration   access token lifetime (e.g. "15m")
//	-refresh-token-duration  refresh token lifetime (e.g. "24h")
//	-janitor-interval        expired refresh token purge interval
//	-log-level               minimum log level
//	-c/-config               json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var requestTimeout, apiTimeout time.Duration
	var apiBase, refreshPath string
	var sessionDriver, sessionDSN string
	var tokenSignKey, tokenIssuer string
	var accessTokenDuration, refreshTokenDuration time.Duration
	var janitorInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 30s)")
	fs.StringVar(&apiBase, "api-base", "", "REST backend base URL")
	fs.DurationVar(&apiTimeout, "api-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&refreshPath, "refresh-path", "", "Token refresh endpoint path")
	fs.StringVar(&sessionDriver, "session-driver", "", "Session store driver: sqlite, memory, none")
	fs.StringVar(&sessionDSN, "session-dsn", "", "Sqlite session database file")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 15m)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 24h)")
	fs.DurationVar(&janitorInterval, "janitor-interval", 0, "Expired refresh token purge interval")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
			LogLevel:             logLevel,
		},
		Storage: Storage{
			Session: Session{
				Driver: sessionDriver,
				DSN:    sessionDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        apiBase,
			RequestTimeout: apiTimeout,
			RefreshPath:    refreshPath,
		},
		Workers: Workers{
			JanitorInterval: janitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
