// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

// nopSessionStore is used where no persistent storage is available, e.g. a
// non-interactive run. Reads report absent tokens and writes are skipped.
type nopSessionStore struct{}

// NewNopSessionStore returns a [SessionStore] that never stores anything and
// never fails.
func NewNopSessionStore() SessionStore {
	return nopSessionStore{}
}

func (nopSessionStore) Save(context.Context, string, string) error { return nil }

func (nopSessionStore) Get(context.Context) (string, error) { return "", nil }

func (nopSessionStore) GetRefresh(context.Context) (string, error) { return "", nil }

func (nopSessionStore) Clear(context.Context) error { return nil }
