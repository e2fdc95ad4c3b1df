// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// itemIDFromQuery reads the "id" query parameter. A value that is not a
// number cannot name an item and is reported as store.ErrItemNotFound.
func itemIDFromQuery(r *http.Request) (int64, bool, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w: id %q", store.ErrItemNotFound, raw)
	}
	return id, true, nil
}

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	id, ok, err := itemIDFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid item id")
		return
	}

	if !ok {
		items, err := h.services.ItemService.ListItems(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "error listing items")
			return
		}
		utils.WriteJSON(w, items, http.StatusOK)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting item")
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := readJSON(r, &item); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	created, err := h.services.ItemService.CreateItem(r.Context(), item)
	if err != nil {
		writeServiceError(w, r, err, "error creating item")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var update models.ItemUpdate
	if err := readJSON(r, &update); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.ItemService.UpdateItem(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, err, "error updating item")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok, err := itemIDFromQuery(r)
	if !ok {
		err = errMissingItemIDParam
	}
	if err != nil {
		writeServiceError(w, r, err, "invalid item id")
		return
	}

	deleted, err := h.services.ItemService.DeleteItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error deleting item")
		return
	}
	utils.WriteJSON(w, deleted, http.StatusOK)
}
