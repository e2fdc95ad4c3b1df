// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

type positionRepository struct {
	mu        sync.RWMutex
	nextID    int64
	positions map[int64]models.Position
}

// NewPositionRepository constructs an empty in-memory [PositionRepository].
func NewPositionRepository() PositionRepository {
	return &positionRepository{
		nextID:    1,
		positions: make(map[int64]models.Position),
	}
}

func (r *positionRepository) CreatePosition(_ context.Context, position models.Position) (models.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.codeTaken(position.PositionCode, 0) {
		return models.Position{}, ErrPositionCodeExists
	}

	position.PositionID = r.nextID
	r.nextID++
	r.positions[position.PositionID] = position

	return position, nil
}

func (r *positionRepository) GetPosition(_ context.Context, id int64) (models.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	position, ok := r.positions[id]
	if !ok {
		return models.Position{}, ErrPositionNotFound
	}
	return position, nil
}

func (r *positionRepository) ListPositions(_ context.Context) ([]models.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	positions := make([]models.Position, 0, len(r.positions))
	for _, position := range r.positions {
		positions = append(positions, position)
	}
	slices.SortFunc(positions, func(a, b models.Position) int { return int(a.PositionID - b.PositionID) })

	return positions, nil
}

func (r *positionRepository) UpdatePosition(_ context.Context, position models.Position) (models.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.positions[position.PositionID]; !ok {
		return models.Position{}, ErrPositionNotFound
	}
	if r.codeTaken(position.PositionCode, position.PositionID) {
		return models.Position{}, ErrPositionCodeExists
	}
	r.positions[position.PositionID] = position

	return position, nil
}

func (r *positionRepository) DeletePosition(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.positions[id]; !ok {
		return ErrPositionNotFound
	}
	delete(r.positions, id)
	return nil
}

func (r *positionRepository) codeTaken(code string, exceptID int64) bool {
	for id, position := range r.positions {
		if id != exceptID && position.PositionCode == code {
			return true
		}
	}
	return false
}
