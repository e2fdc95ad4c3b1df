// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-admin-dashboard/internal/adapter"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
)

// ClientServices groups the services of the command line client.
type ClientServices struct {
	AuthService     ClientAuthService
	ResourceService ClientResourceService
}

func NewClientServices(session store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(session, serverAdapter, logger),
		ResourceService: NewClientResourceService(session, serverAdapter, logger),
	}
}
