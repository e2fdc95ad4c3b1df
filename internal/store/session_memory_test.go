// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		seed        models.Session
		saveAccess  string
		saveRefresh string
		wantAccess  string
		wantRefresh string
	}{
		{
			name:        "save both into empty store",
			saveAccess:  "a1",
			saveRefresh: "r1",
			wantAccess:  "a1",
			wantRefresh: "r1",
		},
		{
			name:        "empty refresh keeps the prior one",
			seed:        models.Session{AccessToken: "old", RefreshToken: "r0"},
			saveAccess:  "a2",
			wantAccess:  "a2",
			wantRefresh: "r0",
		},
		{
			name:        "new refresh overwrites",
			seed:        models.Session{AccessToken: "old", RefreshToken: "r0"},
			saveAccess:  "a3",
			saveRefresh: "r3",
			wantAccess:  "a3",
			wantRefresh: "r3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemorySessionStore(tt.seed)
			require.NoError(t, s.Save(ctx, tt.saveAccess, tt.saveRefresh))

			access, err := s.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, access)

			refresh, err := s.GetRefresh(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRefresh, refresh)
		})
	}
}

func TestMemorySessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(models.Session{AccessToken: "a", RefreshToken: "r"})

	require.NoError(t, s.Clear(ctx))

	access, _ := s.Get(ctx)
	refresh, _ := s.GetRefresh(ctx)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestMemorySessionStore_ConcurrentSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(models.Session{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save(ctx, fmt.Sprintf("a%d", i), fmt.Sprintf("r%d", i))
			_, _ = s.Get(ctx)
		}()
	}
	wg.Wait()

	access, _ := s.Get(ctx)
	assert.NotEmpty(t, access)
}

func TestNopSessionStore(t *testing.T) {
	ctx := context.Background()
	s := NewNopSessionStore()

	require.NoError(t, s.Save(ctx, "a", "r"))

	access, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, access)

	refresh, err := s.GetRefresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, refresh)

	assert.NoError(t, s.Clear(ctx))
}
