// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Storages groups the repositories of the development backend.
type Storages struct {
	UserRepository         UserRepository
	PositionRepository     PositionRepository
	ItemRepository         ItemRepository
	RefreshTokenRepository RefreshTokenRepository
}

// NewStorages returns fresh, empty in-memory repositories.
func NewStorages() *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(),
		PositionRepository:     NewPositionRepository(),
		ItemRepository:         NewItemRepository(),
		RefreshTokenRepository: NewRefreshTokenRepository(),
	}
}
