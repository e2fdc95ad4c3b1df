// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("items"))
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ---- Table test ----

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "GET /api/items registered",
			method:         http.MethodGet,
			path:           "/api/items",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /api/items registered",
			method:         http.MethodPost,
			path:           "/api/items",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "DELETE /api/users/{id} in sub-router",
			method:         http.MethodDelete,
			path:           "/api/users/5",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "PATCH /api/items not registered",
			method:         http.MethodPatch,
			path:           "/api/items",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET, POST",
		},
		{
			name:           "POST /api/users not registered in sub-router",
			method:         http.MethodPost,
			path:           "/api/users",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET",
		},
		{
			name:           "GET /api/users/{id} not registered in sub-router",
			method:         http.MethodGet,
			path:           "/api/users/5",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "DELETE",
		},
		{
			name:           "GET /api/nonexistent",
			method:         http.MethodGet,
			path:           "/api/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Allow"))
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "items", rr.Body.String())
}

func TestCheckHTTPMethod_JSONErrorBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/items", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rr.Body.String())
}
