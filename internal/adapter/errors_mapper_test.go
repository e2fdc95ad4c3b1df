// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"ok", http.StatusOK, "", nil, ""},
		{"no content", http.StatusNoContent, "", nil, ""},
		{"bad request json", http.StatusBadRequest, `{"error":"Name and description are required"}`, ErrBadRequest, "Name and description are required"},
		{"unauthorized text", http.StatusUnauthorized, "token expired", ErrUnauthorized, "token expired"},
		{"forbidden message key", http.StatusForbidden, `{"message":"admins only"}`, ErrForbidden, "admins only"},
		{"not found", http.StatusNotFound, `{"error":"Item not found"}`, ErrNotFound, "Item not found"},
		{"conflict", http.StatusConflict, "login already exists", ErrConflict, "login already exists"},
		{"internal", http.StatusInternalServerError, "", ErrInternalServerError, "Internal Server Error"},
		{"bad gateway", http.StatusBadGateway, "<html>502</html>", ErrBadGateway, "<html>502</html>"},
		{"teapot", http.StatusTeapot, "", ErrUnexpectedStatus, "418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(&Response{StatusCode: tt.status, Body: []byte(tt.body)})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
