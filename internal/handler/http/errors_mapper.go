// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked with errors.Is, so wrapped errors resolve too.
var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrCredentialsRequired:     {http.StatusBadRequest, app.MsgCredentialsRequired},
	service.ErrInvalidID:               {http.StatusBadRequest, app.MsgInvalidID},
	service.ErrPositionFieldsRequired:  {http.StatusBadRequest, app.MsgPositionFieldsRequired},
	service.ErrItemFieldsRequired:      {http.StatusBadRequest, app.MsgItemFieldsRequired},
	service.ErrItemIDRequired:          {http.StatusBadRequest, app.MsgItemIDRequired},
	service.ErrRefreshTokenRequired:    {http.StatusBadRequest, app.MsgRefreshTokenRequired},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrRefreshTokenInvalid:     {http.StatusUnauthorized, app.MsgRefreshTokenInvalid},
	service.ErrTokenCreationFailed:     {http.StatusInternalServerError, app.MsgInternalServerError},

	ErrInvalidIDParam:     {http.StatusBadRequest, app.MsgInvalidID},
	utils.ErrEmptyBody:    {http.StatusBadRequest, app.MsgInvalidDataProvided},
	errInvalidJSON:        {http.StatusBadRequest, app.MsgInvalidDataProvided},
	errMissingItemIDParam: {http.StatusBadRequest, app.MsgItemIDRequired},

	store.ErrLoginAlreadyExists: {http.StatusConflict, app.MsgLoginAlreadyExists},
	store.ErrPositionCodeExists: {http.StatusConflict, app.MsgPositionCodeExists},
	store.ErrNoUserWasFound:     {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrPositionNotFound:   {http.StatusNotFound, app.MsgPositionNotFound},
	store.ErrItemNotFound:       {http.StatusNotFound, app.MsgItemNotFound},
}

func errorFromMap(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return errorFromMap(err).status
}

// writeServiceError logs err and writes the matching status with an
// {"error": message} body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := errorFromMap(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
