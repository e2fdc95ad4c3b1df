// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusCreated)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "Item not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Item not found", body.Error)
}

func TestReadJSON(t *testing.T) {
	var item models.Item
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"n","description":"d"}`))
	require.NoError(t, ReadJSON(r, &item))
	assert.Equal(t, "n", item.Name)
	assert.Equal(t, "d", item.Description)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, ReadJSON(r, &item), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	err := ReadJSON(r, &item)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)
}
