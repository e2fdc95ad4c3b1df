// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

// maxRequestBodySize bounds JSON request bodies accepted by ReadJSON.
const maxRequestBodySize = 1 << 20

// ErrEmptyBody is returned by ReadJSON for a request without a body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON serializes data and writes it with statusCode and an
// application/json content type. If marshaling fails a 500 is written
// instead and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// ReadJSON decodes the JSON body of r into v.
func ReadJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize)).Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}

	return nil
}
