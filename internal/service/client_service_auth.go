// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/internal/adapter"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

type clientAuthService struct {
	session store.SessionStore
	adapter adapter.ServerAdapter
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientAuthService(session store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{session: session, adapter: serverAdapter, now: time.Now, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) error {
	credentials, err := normalizeCredentials(credentials)
	if err != nil {
		return err
	}

	pair, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("username", credentials.Username).Msg("login failed")
		return mapAdapterError(err)
	}

	if err = a.session.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	a.logger.Info().Str("username", credentials.Username).Msg("logged in")

	return nil
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) (bool, error) {
	credentials, err := normalizeCredentials(credentials)
	if err != nil {
		return false, err
	}

	pair, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("username", credentials.Username).Msg("registration failed")
		return false, mapAdapterError(err)
	}
	if pair.AccessToken == "" {
		return false, nil
	}

	if err = a.session.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return false, fmt.Errorf("error saving session: %w", err)
	}
	return true, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (a *clientAuthService) Status(ctx context.Context) (models.SessionStatus, error) {
	accessToken, err := a.session.Get(ctx)
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("error reading access token: %w", err)
	}
	refreshToken, err := a.session.GetRefresh(ctx)
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("error reading refresh token: %w", err)
	}

	status := models.SessionStatus{
		LoggedIn:        accessToken != "",
		HasRefreshToken: refreshToken != "",
	}
	if accessToken == "" {
		return status, nil
	}

	// opaque access tokens are valid too; only JWTs carry claims
	token, err := utils.ParseUnverifiedJWTToken(accessToken)
	if err != nil {
		a.logger.Debug().Err(err).Msg("access token is not a JWT")
		return status, nil
	}

	status.Subject = token.Subject
	status.Issuer = token.Issuer
	if token.ExpiresAt != nil {
		expiresAt := token.ExpiresAt.Time
		status.ExpiresAt = &expiresAt
		status.Expired = !a.now().Before(expiresAt)
	}

	return status, nil
}

func normalizeCredentials(credentials models.Credentials) (models.Credentials, error) {
	credentials.Username = strings.TrimSpace(credentials.Username)
	credentials.Password = strings.TrimSpace(credentials.Password)
	if credentials.Username == "" || credentials.Password == "" {
		return models.Credentials{}, ErrCredentialsRequired
	}
	return credentials, nil
}
