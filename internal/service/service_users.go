// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/validators"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

type userService struct {
	userRepository         store.UserRepository
	refreshTokenRepository store.RefreshTokenRepository
	validator              validators.Validator
	logger                 *logger.Logger
}

func NewUserService(userRepository store.UserRepository, refreshTokenRepository store.RefreshTokenRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:         userRepository,
		refreshTokenRepository: refreshTokenRepository,
		validator:              validators.NewResourceValidator(),
		logger:                 logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidID
	}
	return s.userRepository.GetUser(ctx, id)
}

// CreateUser stores a new account. Username and password are required and
// an empty role becomes [models.DefaultUserRole].
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Role = strings.TrimSpace(user.Role)
	if err := s.validator.Validate(ctx, user, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCredentialsRequired, err)
	}
	if user.Role == "" {
		user.Role = models.DefaultUserRole
	}

	passwordHash, err := hashPassword(user.Password)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = passwordHash
	user.Password = ""

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	return created, nil
}

// UpdateUser applies the non-nil fields of update. A new password is
// re-hashed; blank username or role values are rejected.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidID
	}

	user, err := s.userRepository.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Username != nil {
		user.Username = strings.TrimSpace(*update.Username)
	}
	if update.Role != nil {
		user.Role = strings.TrimSpace(*update.Role)
	}
	if update.Password != nil {
		if user.PasswordHash, err = hashPassword(*update.Password); err != nil {
			return models.User{}, err
		}
	}

	return s.userRepository.UpdateUser(ctx, user)
}

// DeleteUser removes the account and revokes its refresh tokens.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}
	return s.refreshTokenRepository.DeleteUserRefreshTokens(ctx, id)
}
