// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id in the request
// context under [utils.UserIDCtxKey].
//
// Requests are rejected with 401 and an {"error": ...} body when the header
// is absent, is not a bearer header, or carries an expired or invalid token.
// The client reacts to exactly this 401 by refreshing its session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgMissingAuthorization, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
