// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

func ptr[T any](v T) *T { return &v }

func TestUserService_CRUD(t *testing.T) {
	ctx := context.Background()
	refreshTokens := store.NewRefreshTokenRepository()
	svc := NewUserService(store.NewUserRepository(), refreshTokens, logger.Nop())

	created, err := svc.CreateUser(ctx, models.User{Username: " carol ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "carol", created.Username)
	assert.Equal(t, models.DefaultUserRole, created.Role)
	assert.Empty(t, created.Password)

	admin, err := svc.CreateUser(ctx, models.User{Username: "root", Password: "pw", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	updated, err := svc.UpdateUser(ctx, created.ID, models.UserUpdate{Role: ptr("admin")})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)
	assert.Equal(t, "carol", updated.Username)

	_, err = svc.UpdateUser(ctx, created.ID, models.UserUpdate{Username: ptr(" ")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	require.NoError(t, refreshTokens.SaveRefreshToken(ctx, models.RefreshToken{
		Token: "carol-token", UserID: created.ID, ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, svc.DeleteUser(ctx, created.ID))

	_, err = svc.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	_, err = refreshTokens.TakeRefreshToken(ctx, "carol-token")
	assert.ErrorIs(t, err, store.ErrRefreshTokenNotFound)
}

func TestUserService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(store.NewUserRepository(), store.NewRefreshTokenRepository(), logger.Nop())

	_, err := svc.CreateUser(ctx, models.User{Username: "dave"})
	assert.ErrorIs(t, err, ErrCredentialsRequired)

	_, err = svc.GetUser(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.UpdateUser(ctx, -1, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.ErrorIs(t, svc.DeleteUser(ctx, 0), ErrInvalidID)
}

func TestPositionService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewPositionService(store.NewPositionRepository(), logger.Nop())

	_, err := svc.CreatePosition(ctx, models.Position{PositionCode: "DEV-01"})
	assert.ErrorIs(t, err, ErrPositionFieldsRequired)

	created, err := svc.CreatePosition(ctx, models.Position{PositionCode: " DEV-01 ", PositionName: "Developer"})
	require.NoError(t, err)
	assert.Equal(t, "DEV-01", created.PositionCode)

	_, err = svc.CreatePosition(ctx, models.Position{PositionCode: "DEV-01", PositionName: "Other"})
	assert.ErrorIs(t, err, store.ErrPositionCodeExists)

	updated, err := svc.UpdatePosition(ctx, created.PositionID, models.PositionUpdate{PositionName: ptr("Senior Developer")})
	require.NoError(t, err)
	assert.Equal(t, "DEV-01", updated.PositionCode)
	assert.Equal(t, "Senior Developer", updated.PositionName)

	_, err = svc.UpdatePosition(ctx, created.PositionID, models.PositionUpdate{PositionCode: ptr("")})
	assert.ErrorIs(t, err, ErrPositionFieldsRequired)

	got, err := svc.GetPosition(ctx, created.PositionID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, svc.DeletePosition(ctx, created.PositionID))
	positions, err := svc.ListPositions(ctx)
	require.NoError(t, err)
	assert.Empty(t, positions)

	assert.ErrorIs(t, svc.DeletePosition(ctx, created.PositionID), store.ErrPositionNotFound)
}

func TestItemService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(store.NewItemRepository(), logger.Nop())

	_, err := svc.CreateItem(ctx, models.Item{Name: "pen"})
	assert.ErrorIs(t, err, ErrItemFieldsRequired)

	created, err := svc.CreateItem(ctx, models.Item{Name: "pen", Description: "blue"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.UpdateItem(ctx, models.ItemUpdate{Name: "pencil"})
	assert.ErrorIs(t, err, ErrItemIDRequired)

	updated, err := svc.UpdateItem(ctx, models.ItemUpdate{ID: created.ID, Name: "pencil"})
	require.NoError(t, err)
	assert.Equal(t, "pencil", updated.Name)
	assert.Equal(t, "blue", updated.Description)

	_, err = svc.UpdateItem(ctx, models.ItemUpdate{ID: created.ID + 10, Name: "x"})
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	deleted, err := svc.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pencil", deleted.Name)

	_, err = svc.GetItem(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
