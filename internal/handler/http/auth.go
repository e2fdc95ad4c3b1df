// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := readJSON(r, &credentials); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	pair, err := h.services.AuthService.IssueTokens(ctx, registeredUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of tokens failed")
		return
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, pair, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := readJSON(r, &credentials); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("login attempt")

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	pair, err := h.services.AuthService.IssueTokens(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of tokens failed")
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var request models.RefreshRequest
	if err := readJSON(r, &request); err != nil {
		writeServiceError(w, r, err, "Invalid JSON was passed")
		return
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), request.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err, "token refresh failed")
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}
