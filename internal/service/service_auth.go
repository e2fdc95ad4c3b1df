// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/internal/validators"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// authService is the concrete implementation of AuthService.
//
// Passwords are stored as bcrypt hashes. Access tokens are HS256 JWTs;
// refresh tokens are opaque uuids kept in a RefreshTokenRepository and
// rotated on every use.
type authService struct {
	userRepository         store.UserRepository
	refreshTokenRepository store.RefreshTokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify access tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued access token. Tokens
	// with another issuer are rejected.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	uuid      *utils.UUIDGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService with the token settings of cfg.
func NewAuthService(userRepository store.UserRepository, refreshTokenRepository store.RefreshTokenRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		refreshTokenRepository: refreshTokenRepository,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		accessTokenDuration:    cfg.AccessTokenDuration,
		refreshTokenDuration:   cfg.RefreshTokenDuration,
		uuid:                   utils.NewUUIDGenerator(),
		validator:              validators.NewResourceValidator(),
		now:                    time.Now,
		logger:                 logger,
	}
}

// RegisterUser creates an account with [models.DefaultUserRole].
//
// Returns ErrCredentialsRequired for an empty username or password and a
// wrapped store.ErrLoginAlreadyExists for a taken username.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrCredentialsRequired, err)
	}

	passwordHash, err := hashPassword(credentials.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
		Role:         models.DefaultUserRole,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login returns the account matching credentials. Unknown usernames and
// wrong passwords both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrCredentialsRequired, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", credentials.Username).Msg("login for unknown user")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// IssueTokens signs an access token for user and stores a fresh refresh
// token.
func (a *authService) IssueTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken := models.RefreshToken{
		Token:     a.uuid.Generate(),
		UserID:    user.ID,
		ExpiresAt: a.now().Add(a.refreshTokenDuration),
	}
	if err = a.refreshTokenRepository.SaveRefreshToken(ctx, refreshToken); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.Token,
	}, nil
}

// Refresh consumes refreshToken and issues a new pair for its owner.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(refreshToken) == "" {
		return models.TokenPair{}, ErrRefreshTokenRequired
	}

	stored, err := a.refreshTokenRepository.TakeRefreshToken(ctx, refreshToken)
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		log.Debug().Msg("unknown or reused refresh token")
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("error reading refresh token: %w", err)
	}
	if stored.Expired(a.now()) {
		log.Debug().Int64("user_id", stored.UserID).Msg("expired refresh token")
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}

	user, err := a.userRepository.GetUser(ctx, stored.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", stored.UserID).Msg("refresh token owner not found")
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}

	return a.IssueTokens(ctx, user)
}

// ParseToken verifies the signature, issuer and expiry of tokenString. Any
// failure is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) PurgeExpiredRefreshTokens(ctx context.Context) (int, error) {
	return a.refreshTokenRepository.PurgeExpired(ctx, a.now())
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}
