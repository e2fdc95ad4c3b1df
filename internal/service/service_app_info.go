// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) GetAppInfo(context.Context) models.AppBuildInfo {
	return s.buildInfo
}
