// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing users")
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid user id")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting user")
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := readJSON(r, &user); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "error creating user")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid user id")
		return
	}

	var update models.UserUpdate
	if err = readJSON(r, &update); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, r, err, "error updating user")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid user id")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
