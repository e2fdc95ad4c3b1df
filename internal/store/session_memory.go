// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

type memorySessionStore struct {
	mu      sync.RWMutex
	session models.Session
}

// NewMemorySessionStore returns a process-local [SessionStore] seeded with
// session. The store is safe for concurrent use.
func NewMemorySessionStore(session models.Session) SessionStore {
	return &memorySessionStore{session: session}
}

func (m *memorySessionStore) Save(_ context.Context, accessToken, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session.AccessToken = accessToken
	if refreshToken != "" {
		m.session.RefreshToken = refreshToken
	}
	return nil
}

func (m *memorySessionStore) Get(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken, nil
}

func (m *memorySessionStore) GetRefresh(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.RefreshToken, nil
}

func (m *memorySessionStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = models.Session{}
	return nil
}
