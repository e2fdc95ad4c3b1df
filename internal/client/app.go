// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

const usage = `usage: client [flags] <command> [arguments]

commands:
  login <username> <password>
  register <username> <password>
  logout
  status
  version
  users list | get <id> | create <username> <password> [role]
        | update <id> [username=..] [password=..] [role=..] | delete <id>
  positions list | get <id> | create <code> <name>
        | update <id> [code=..] [name=..] | delete <id>
  items list | get <id> | create <name> <description>
        | update <id> [name=..] [description=..] | delete <id>
  request <method> <path> [json body]
`

type commandFunc func(ctx context.Context, args []string) error

type App struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	out       io.Writer
	logger    *logger.Logger

	commands map[string]commandFunc
}

func NewApp(services *service.ClientServices, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		services:  services,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}

	a.commands = map[string]commandFunc{
		"login":     a.login,
		"register":  a.register,
		"logout":    a.logout,
		"status":    a.status,
		"version":   a.version,
		"users":     a.users,
		"positions": a.positions,
		"items":     a.items,
		"request":   a.request,
	}

	return a
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		_, _ = fmt.Fprint(a.out, usage)
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	command, ok := a.commands[args[0]]
	if !ok {
		_, _ = fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Strs("args", args).Msg("running command")

	if err := command(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
