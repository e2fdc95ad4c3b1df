// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore is the client-local persistence of the two session tokens.
//
// An absent token is reported as an empty string with a nil error. Writes are
// last-write-wins; no transactional guarantee spans separate calls.
type SessionStore interface {
	// Save overwrites the stored access token. The refresh token is
	// overwritten only when refreshToken is non-empty, otherwise the prior
	// value is retained.
	Save(ctx context.Context, accessToken, refreshToken string) error

	// Get returns the stored access token or "" when absent.
	Get(ctx context.Context) (string, error)

	// GetRefresh returns the stored refresh token or "" when absent.
	GetRefresh(ctx context.Context) (string, error)

	// Clear removes both tokens.
	Clear(ctx context.Context) error
}

// UserRepository stores the accounts of the development backend.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// PositionRepository stores the positions of the development backend.
type PositionRepository interface {
	CreatePosition(ctx context.Context, position models.Position) (models.Position, error)
	GetPosition(ctx context.Context, id int64) (models.Position, error)
	ListPositions(ctx context.Context) ([]models.Position, error)
	UpdatePosition(ctx context.Context, position models.Position) (models.Position, error)
	DeletePosition(ctx context.Context, id int64) error
}

// ItemRepository stores the entries of the /api/crud demo collection.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) (models.Item, error)
}

// RefreshTokenRepository stores issued refresh tokens of the development
// backend.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token models.RefreshToken) error
	// TakeRefreshToken removes and returns the token. Each refresh token can
	// be exchanged once.
	TakeRefreshToken(ctx context.Context, token string) (models.RefreshToken, error)
	DeleteUserRefreshTokens(ctx context.Context, userID int64) error
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
