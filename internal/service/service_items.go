// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/validators"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		validator:      validators.NewResourceValidator(),
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.itemRepository.ListItems(ctx)
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.GetItem(ctx, id)
}

// CreateItem requires both name and description.
func (s *itemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := s.validator.Validate(ctx, item, validators.FieldItemName, validators.FieldItemDescription); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrItemFieldsRequired, err)
	}
	return s.itemRepository.CreateItem(ctx, item)
}

// UpdateItem replaces the non-empty name and description of the item.
func (s *itemService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrItemIDRequired, err)
	}

	item, err := s.itemRepository.GetItem(ctx, update.ID)
	if err != nil {
		return models.Item{}, err
	}
	if update.Name != "" {
		item.Name = update.Name
	}
	if update.Description != "" {
		item.Description = update.Description
	}

	return s.itemRepository.UpdateItem(ctx, item)
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.DeleteItem(ctx, id)
}
