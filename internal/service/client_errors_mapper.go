// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-admin-dashboard/internal/adapter"
	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgCredentialsRequired:
			return ErrCredentialsRequired
		case app.MsgInvalidID:
			return ErrInvalidID
		case app.MsgPositionFieldsRequired:
			return ErrPositionFieldsRequired
		case app.MsgItemFieldsRequired:
			return ErrItemFieldsRequired
		case app.MsgItemIDRequired:
			return ErrItemIDRequired
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return ErrWrongPassword
		}
		// still 401 after the refresh cycle
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrNoUserWasFound
		case app.MsgPositionNotFound:
			return store.ErrPositionNotFound
		case app.MsgItemNotFound:
			return store.ErrItemNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgLoginAlreadyExists:
			return store.ErrLoginAlreadyExists
		case app.MsgPositionCodeExists:
			return store.ErrPositionCodeExists
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
