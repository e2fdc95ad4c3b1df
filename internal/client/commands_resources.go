// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

func (a *App) users(ctx context.Context, args []string) error {
	svc := a.services.ResourceService
	if len(args) == 0 {
		return usageError("expected list, get, create, update or delete")
	}

	switch args[0] {
	case "list":
		return a.printResult(svc.ListUsers(ctx))
	case "get":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return a.printResult(svc.GetUser(ctx, id))
	case "create":
		if len(args) != 3 && len(args) != 4 {
			return usageError("expected create <username> <password> [role]")
		}
		user := models.User{Username: args[1], Password: args[2]}
		if len(args) == 4 {
			user.Role = args[3]
		}
		return a.printResult(svc.CreateUser(ctx, user))
	case "update":
		id, fields, err := updateArgs(args[1:], "username", "password", "role")
		if err != nil {
			return err
		}
		update := models.UserUpdate{
			Username: fields["username"],
			Password: fields["password"],
			Role:     fields["role"],
		}
		return a.printResult(svc.UpdateUser(ctx, id, update))
	case "delete":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		if err = svc.DeleteUser(ctx, id); err != nil {
			return err
		}
		return a.printJSON(map[string]any{"deleted": id})
	}

	return fmt.Errorf("%w: users %q", ErrUnknownCommand, args[0])
}

func (a *App) positions(ctx context.Context, args []string) error {
	svc := a.services.ResourceService
	if len(args) == 0 {
		return usageError("expected list, get, create, update or delete")
	}

	switch args[0] {
	case "list":
		return a.printResult(svc.ListPositions(ctx))
	case "get":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return a.printResult(svc.GetPosition(ctx, id))
	case "create":
		if len(args) != 3 {
			return usageError("expected create <code> <name>")
		}
		return a.printResult(svc.CreatePosition(ctx, models.Position{PositionCode: args[1], PositionName: args[2]}))
	case "update":
		id, fields, err := updateArgs(args[1:], "code", "name")
		if err != nil {
			return err
		}
		update := models.PositionUpdate{
			PositionCode: fields["code"],
			PositionName: fields["name"],
		}
		return a.printResult(svc.UpdatePosition(ctx, id, update))
	case "delete":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		if err = svc.DeletePosition(ctx, id); err != nil {
			return err
		}
		return a.printJSON(map[string]any{"deleted": id})
	}

	return fmt.Errorf("%w: positions %q", ErrUnknownCommand, args[0])
}

func (a *App) items(ctx context.Context, args []string) error {
	svc := a.services.ResourceService
	if len(args) == 0 {
		return usageError("expected list, get, create, update or delete")
	}

	switch args[0] {
	case "list":
		return a.printResult(svc.ListItems(ctx))
	case "get":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return a.printResult(svc.GetItem(ctx, id))
	case "create":
		if len(args) != 3 {
			return usageError("expected create <name> <description>")
		}
		return a.printResult(svc.CreateItem(ctx, models.Item{Name: args[1], Description: args[2]}))
	case "update":
		id, fields, err := updateArgs(args[1:], "name", "description")
		if err != nil {
			return err
		}
		update := models.ItemUpdate{ID: id}
		if v := fields["name"]; v != nil {
			update.Name = *v
		}
		if v := fields["description"]; v != nil {
			update.Description = *v
		}
		return a.printResult(svc.UpdateItem(ctx, update))
	case "delete":
		id, err := idArg(args[1:])
		if err != nil {
			return err
		}
		return a.printResult(svc.DeleteItem(ctx, id))
	}

	return fmt.Errorf("%w: items %q", ErrUnknownCommand, args[0])
}

func (a *App) request(ctx context.Context, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return usageError("expected request <method> <path> [json body]")
	}

	var body string
	if len(args) == 3 {
		body = args[2]
	}

	resp, err := a.services.ResourceService.Request(ctx, args[0], args[1], body)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(a.out, "HTTP %d\n", resp.StatusCode); err != nil {
		return err
	}
	return a.printBody(resp.Decode())
}

func idArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, usageError("expected <id>")
	}
	return parseID(args[0])
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError(fmt.Sprintf("id must be a positive integer, got %q", raw))
	}
	return id, nil
}

// updateArgs reads "<id> key=value..." where every key is one of allowed.
// Keys that are not given stay nil.
func updateArgs(args []string, allowed ...string) (int64, map[string]*string, error) {
	if len(args) < 2 {
		return 0, nil, usageError(fmt.Sprintf("expected update <id> %s=...", strings.Join(allowed, "=.. ")))
	}

	id, err := parseID(args[0])
	if err != nil {
		return 0, nil, err
	}

	fields := make(map[string]*string, len(allowed))
	for _, pair := range args[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || !contains(allowed, key) {
			return 0, nil, usageError(fmt.Sprintf("unexpected field %q, allowed: %s", pair, strings.Join(allowed, ", ")))
		}
		fields[key] = &value
	}

	return id, fields, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func usageError(msg string) error {
	return fmt.Errorf("%w: %s", ErrUsage, msg)
}
