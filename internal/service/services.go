// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// Services groups the backend services.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	PositionService PositionService
	ItemService     ItemService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.RefreshTokenRepository, cfg, logger),
		UserService:     NewUserService(storages.UserRepository, storages.RefreshTokenRepository, logger),
		PositionService: NewPositionService(storages.PositionRepository, logger),
		ItemService:     NewItemService(storages.ItemRepository, logger),
		AppInfoService:  NewAppInfoService(buildInfo),
	}
}
