// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

func (h *Handler) listPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.services.PositionService.ListPositions(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing positions")
		return
	}
	utils.WriteJSON(w, positions, http.StatusOK)
}

func (h *Handler) getPosition(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid position id")
		return
	}

	position, err := h.services.PositionService.GetPosition(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting position")
		return
	}
	utils.WriteJSON(w, position, http.StatusOK)
}

func (h *Handler) createPosition(w http.ResponseWriter, r *http.Request) {
	var position models.Position
	if err := readJSON(r, &position); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	created, err := h.services.PositionService.CreatePosition(r.Context(), position)
	if err != nil {
		writeServiceError(w, r, err, "error creating position")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePosition(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid position id")
		return
	}

	var update models.PositionUpdate
	if err = readJSON(r, &update); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.PositionService.UpdatePosition(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, r, err, "error updating position")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePosition(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid position id")
		return
	}

	if err = h.services.PositionService.DeletePosition(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting position")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
