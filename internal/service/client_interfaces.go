// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/internal/adapter"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for authentication and
// for the locally stored session.
type ClientAuthService interface {
	// Login trims the credentials, exchanges them for a token pair and saves
	// the pair in the session store.
	// Returns ErrCredentialsRequired for empty input and ErrWrongPassword when
	// the backend rejects the credentials.
	Login(ctx context.Context, credentials models.Credentials) error

	// Register creates an account. When the backend answers with a token pair
	// the pair is saved and loggedIn is true.
	Register(ctx context.Context, credentials models.Credentials) (loggedIn bool, err error)

	// Logout removes both tokens from the session store. It never contacts
	// the backend.
	Logout(ctx context.Context) error

	// Status describes the stored session. The access token claims are read
	// without verifying the signature.
	Status(ctx context.Context) (models.SessionStatus, error)
}

// ClientResourceService defines the client-side contract for the dashboard
// collections. Every call goes through the authenticated request client, so
// an expired access token is refreshed transparently once.
type ClientResourceService interface {
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

	// Request sends an arbitrary request and returns the response whatever
	// its status. A non-empty body is sent as JSON.
	Request(ctx context.Context, method, path, body string) (*adapter.Response, error)
}
