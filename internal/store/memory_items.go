// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

type itemRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Item
}

// NewItemRepository constructs an empty in-memory [ItemRepository].
func NewItemRepository() ItemRepository {
	return &itemRepository{
		nextID: 1,
		items:  make(map[int64]models.Item),
	}
}

func (r *itemRepository) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	item.CreatedAt = time.Now().UTC()
	r.nextID++
	r.items[item.ID] = item

	return item, nil
}

func (r *itemRepository) GetItem(_ context.Context, id int64) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	return item, nil
}

func (r *itemRepository) ListItems(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b models.Item) int { return int(a.ID - b.ID) })

	return items, nil
}

func (r *itemRepository) UpdateItem(_ context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ID]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	item.CreatedAt = stored.CreatedAt
	r.items[item.ID] = item

	return item, nil
}

// DeleteItem removes and returns the item.
func (r *itemRepository) DeleteItem(_ context.Context, id int64) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	delete(r.items, id)
	return item, nil
}
