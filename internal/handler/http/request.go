// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
)

// readJSON decodes the request body into v. Malformed bodies are reported
// as errInvalidJSON.
func readJSON(r *http.Request, v any) error {
	err := utils.ReadJSON(r, v)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", errInvalidJSON, err)
}

// idFromPath parses the {id} URL parameter.
func idFromPath(r *http.Request) (int64, error) {
	return parseID(chi.URLParam(r, "id"))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIDParam, raw)
	}
	return id, nil
}
