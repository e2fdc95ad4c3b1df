// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
