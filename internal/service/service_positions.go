// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/validators"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

type positionService struct {
	positionRepository store.PositionRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewPositionService(positionRepository store.PositionRepository, logger *logger.Logger) PositionService {
	return &positionService{
		positionRepository: positionRepository,
		validator:          validators.NewResourceValidator(),
		logger:             logger,
	}
}

func (s *positionService) ListPositions(ctx context.Context) ([]models.Position, error) {
	return s.positionRepository.ListPositions(ctx)
}

func (s *positionService) GetPosition(ctx context.Context, id int64) (models.Position, error) {
	if id <= 0 {
		return models.Position{}, ErrInvalidID
	}
	return s.positionRepository.GetPosition(ctx, id)
}

func (s *positionService) CreatePosition(ctx context.Context, position models.Position) (models.Position, error) {
	position.PositionCode = strings.TrimSpace(position.PositionCode)
	position.PositionName = strings.TrimSpace(position.PositionName)
	if err := s.validator.Validate(ctx, position); err != nil {
		return models.Position{}, fmt.Errorf("%w: %w", ErrPositionFieldsRequired, err)
	}

	return s.positionRepository.CreatePosition(ctx, position)
}

func (s *positionService) UpdatePosition(ctx context.Context, id int64, update models.PositionUpdate) (models.Position, error) {
	if id <= 0 {
		return models.Position{}, ErrInvalidID
	}

	position, err := s.positionRepository.GetPosition(ctx, id)
	if err != nil {
		return models.Position{}, err
	}

	if update.PositionCode != nil {
		position.PositionCode = strings.TrimSpace(*update.PositionCode)
	}
	if update.PositionName != nil {
		position.PositionName = strings.TrimSpace(*update.PositionName)
	}
	if err = s.validator.Validate(ctx, position); err != nil {
		return models.Position{}, fmt.Errorf("%w: %w", ErrPositionFieldsRequired, err)
	}

	return s.positionRepository.UpdatePosition(ctx, position)
}

func (s *positionService) DeletePosition(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.positionRepository.DeletePosition(ctx, id)
}
