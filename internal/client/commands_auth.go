// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

func (a *App) login(ctx context.Context, args []string) error {
	credentials, err := credentialsFromArgs(args)
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Login(ctx, credentials); err != nil {
		return err
	}
	return a.printJSON(map[string]any{"logged_in": true, "username": credentials.Username})
}

func (a *App) register(ctx context.Context, args []string) error {
	credentials, err := credentialsFromArgs(args)
	if err != nil {
		return err
	}

	loggedIn, err := a.services.AuthService.Register(ctx, credentials)
	if err != nil {
		return err
	}
	return a.printJSON(map[string]any{"registered": true, "logged_in": loggedIn})
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	return a.printJSON(map[string]any{"logged_in": false})
}

func (a *App) status(ctx context.Context, _ []string) error {
	status, err := a.services.AuthService.Status(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(status)
}

func (a *App) version(context.Context, []string) error {
	return a.printJSON(a.buildInfo)
}

func credentialsFromArgs(args []string) (models.Credentials, error) {
	if len(args) != 2 {
		return models.Credentials{}, usageError("expected <username> <password>")
	}
	return models.Credentials{Username: args[0], Password: args[1]}, nil
}
