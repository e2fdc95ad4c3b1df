// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the admin dashboard backend over HTTP.
//
// [Client] is the authenticated request client: it attaches the stored bearer
// token to every request and, on a 401, exchanges the stored refresh token
// once and retries the request once. [ServerAdapter] is the typed API of the
// backend built on top of it; non-2xx statuses are mapped to the sentinel
// errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the typed client API of the dashboard backend.
type ServerAdapter interface {
	// Login exchanges credentials for a token pair. It is sent without a
	// bearer token and never triggers a refresh.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)

	// Register creates an account. The returned pair is empty when the
	// backend does not log the new user in.
	Register(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	ListPositions(ctx context.Context) ([]models.Position, error)
	GetPosition(ctx context.Context, id int64) (models.Position, error)
	CreatePosition(ctx context.Context, position models.Position) (models.Position, error)
	UpdatePosition(ctx context.Context, id int64, update models.PositionUpdate) (models.Position, error)
	DeletePosition(ctx context.Context, id int64) error

	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) (models.Item, error)

	// Do sends an arbitrary request through the authenticated client and
	// returns the response whatever its status.
	Do(ctx context.Context, path string, opts Options) (*Response, error)
}
