// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

type refreshTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken
}

// NewRefreshTokenRepository constructs an empty in-memory
// [RefreshTokenRepository].
func NewRefreshTokenRepository() RefreshTokenRepository {
	return &refreshTokenRepository{
		tokens: make(map[string]models.RefreshToken),
	}
}

func (r *refreshTokenRepository) SaveRefreshToken(_ context.Context, token models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *refreshTokenRepository) TakeRefreshToken(_ context.Context, token string) (models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tokens[token]
	if !ok {
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}
	delete(r.tokens, token)
	return stored, nil
}

func (r *refreshTokenRepository) DeleteUserRefreshTokens(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

// PurgeExpired removes every token expired at now and reports how many were
// removed.
func (r *refreshTokenRepository) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for key, token := range r.tokens {
		if token.Expired(now) {
			delete(r.tokens, key)
			purged++
		}
	}
	return purged, nil
}
