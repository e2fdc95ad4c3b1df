// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-admin-dashboard/internal/adapter"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/validators"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

type clientResourceService struct {
	session   store.SessionStore
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientResourceService(session store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientResourceService {
	return &clientResourceService{
		session:   session,
		adapter:   serverAdapter,
		validator: validators.NewResourceValidator(),
		logger:    logger,
	}
}

// requireSession fails fast with ErrNotLoggedIn when neither token is
// stored; the protected collections would only answer 401.
func (s *clientResourceService) requireSession(ctx context.Context) error {
	accessToken, err := s.session.Get(ctx)
	if err != nil {
		return fmt.Errorf("error reading access token: %w", err)
	}
	if accessToken != "" {
		return nil
	}

	refreshToken, err := s.session.GetRefresh(ctx)
	if err != nil {
		return fmt.Errorf("error reading refresh token: %w", err)
	}
	if refreshToken == "" {
		return ErrNotLoggedIn
	}
	return nil
}

func (s *clientResourceService) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := s.requireSession(ctx); err != nil {
		return nil, err
	}
	users, err := s.adapter.ListUsers(ctx)
	return users, mapAdapterError(err)
}

func (s *clientResourceService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidID
	}
	if err := s.requireSession(ctx); err != nil {
		return models.User{}, err
	}
	user, err := s.adapter.GetUser(ctx, id)
	return user, mapAdapterError(err)
}

func (s *clientResourceService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Role = strings.TrimSpace(user.Role)
	if err := s.validator.Validate(ctx, user, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCredentialsRequired, err)
	}
	if user.Role == "" {
		user.Role = models.DefaultUserRole
	}
	if err := s.requireSession(ctx); err != nil {
		return models.User{}, err
	}

	created, err := s.adapter.CreateUser(ctx, user)
	return created, mapAdapterError(err)
}

func (s *clientResourceService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidID
	}
	err := s.validator.Validate(ctx, update,
		validators.FieldUserUpdateFields, validators.FieldUsername, validators.FieldPassword, validators.FieldRole)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.requireSession(ctx); err != nil {
		return models.User{}, err
	}

	updated, err := s.adapter.UpdateUser(ctx, id, update)
	return updated, mapAdapterError(err)
}

func (s *clientResourceService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.requireSession(ctx); err != nil {
		return err
	}
	return mapAdapterError(s.adapter.DeleteUser(ctx, id))
}

func (s *clientResourceService) ListPositions(ctx context.Context) ([]models.Position, error) {
	if err := s.requireSession(ctx); err != nil {
		return nil, err
	}
	positions, err := s.adapter.ListPositions(ctx)
	return positions, mapAdapterError(err)
}

func (s *clientResourceService) GetPosition(ctx context.Context, id int64) (models.Position, error) {
	if id <= 0 {
		return models.Position{}, ErrInvalidID
	}
	if err := s.requireSession(ctx); err != nil {
		return models.Position{}, err
	}
	position, err := s.adapter.GetPosition(ctx, id)
	return position, mapAdapterError(err)
}

func (s *clientResourceService) CreatePosition(ctx context.Context, position models.Position) (models.Position, error) {
	position.PositionCode = strings.TrimSpace(position.PositionCode)
	position.PositionName = strings.TrimSpace(position.PositionName)
	if err := s.validator.Validate(ctx, position); err != nil {
		return models.Position{}, fmt.Errorf("%w: %w", ErrPositionFieldsRequired, err)
	}
	if err := s.requireSession(ctx); err != nil {
		return models.Position{}, err
	}

	created, err := s.adapter.CreatePosition(ctx, position)
	return created, mapAdapterError(err)
}

func (s *clientResourceService) UpdatePosition(ctx context.Context, id int64, update models.PositionUpdate) (models.Position, error) {
	if id <= 0 {
		return models.Position{}, ErrInvalidID
	}
	err := s.validator.Validate(ctx, update,
		validators.FieldPositionUpdateFields, validators.FieldPositionCode, validators.FieldPositionName)
	if err != nil {
		return models.Position{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.requireSession(ctx); err != nil {
		return models.Position{}, err
	}

	updated, err := s.adapter.UpdatePosition(ctx, id, update)
	return updated, mapAdapterError(err)
}

func (s *clientResourceService) DeletePosition(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.requireSession(ctx); err != nil {
		return err
	}
	return mapAdapterError(s.adapter.DeletePosition(ctx, id))
}

// The /api/crud collection is open, so item calls never require a session.

func (s *clientResourceService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.adapter.ListItems(ctx)
	return items, mapAdapterError(err)
}

func (s *clientResourceService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, ErrInvalidID
	}
	item, err := s.adapter.GetItem(ctx, id)
	return item, mapAdapterError(err)
}

func (s *clientResourceService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := s.validator.Validate(ctx, item, validators.FieldItemName, validators.FieldItemDescription); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrItemFieldsRequired, err)
	}
	created, err := s.adapter.CreateItem(ctx, item)
	return created, mapAdapterError(err)
}

func (s *clientResourceService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrItemIDRequired, err)
	}
	updated, err := s.adapter.UpdateItem(ctx, update)
	return updated, mapAdapterError(err)
}

func (s *clientResourceService) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, ErrInvalidID
	}
	deleted, err := s.adapter.DeleteItem(ctx, id)
	return deleted, mapAdapterError(err)
}

func (s *clientResourceService) Request(ctx context.Context, method, path, body string) (*adapter.Response, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrInvalidDataProvided
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	opts := adapter.Options{Method: strings.ToUpper(strings.TrimSpace(method))}
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}
	if body != "" {
		opts.Body = body
		opts.Headers = map[string]string{"Content-Type": "application/json"}
	}

	return s.adapter.Do(ctx, path, opts)
}
