// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business logic of the dashboard client and
// of the development backend.
//
// Client services (client_*.go) validate and normalise user input, call the
// backend through [adapter.ServerAdapter] and manage the local session.
// Backend services issue and verify tokens and manage the in-memory users,
// positions and items collections.
package service

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates backend users and manages their tokens.
type AuthService interface {
	// RegisterUser creates an account with the default role.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login returns the account matching credentials.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// IssueTokens creates an access token and a stored refresh token for user.
	IssueTokens(ctx context.Context, user models.User) (models.TokenPair, error)

	// Refresh exchanges a refresh token for a new pair. The presented refresh
	// token is consumed.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// ParseToken verifies an access token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// PurgeExpiredRefreshTokens removes expired refresh tokens and returns how
	// many were removed.
	PurgeExpiredRefreshTokens(ctx context.Context) (int, error)
}

// UserService manages the /users collection.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// PositionService manages the /positions collection.
type PositionService interface {
	ListPositions(ctx context.Context) ([]models.Position, error)
	GetPosition(ctx context.Context, id int64) (models.Position, error)
	CreatePosition(ctx context.Context, position models.Position) (models.Position, error)
	UpdatePosition(ctx context.Context, id int64, update models.PositionUpdate) (models.Position, error)
	DeletePosition(ctx context.Context, id int64) error
}

// ItemService manages the open /api/crud demo collection.
type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) (models.Item, error)
}

// AppInfoService reports build metadata of the running backend.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
