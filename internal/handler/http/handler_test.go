// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/mock"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// newRoutedHandler builds a Handler whose AppInfoService answers GET /version.
// The other services are never reached by the route tests below.
func newRoutedHandler(t *testing.T) *Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")).
		AnyTimes()

	return NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
}

type routeCase struct {
	method string
	path   string
}

// protectedRoutes answer 401 without a bearer token, which still proves
// they are registered.
var protectedRoutes = []routeCase{
	{http.MethodGet, "/users"},
	{http.MethodPost, "/users"},
	{http.MethodGet, "/users/1"},
	{http.MethodPut, "/users/1"},
	{http.MethodDelete, "/users/1"},
	{http.MethodGet, "/positions"},
	{http.MethodPost, "/positions"},
	{http.MethodGet, "/positions/1"},
	{http.MethodPut, "/positions/1"},
	{http.MethodDelete, "/positions/1"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router := newRoutedHandler(t).Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_VersionRoute(t *testing.T) {
	router := newRoutedHandler(t).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var info models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, models.AppBuildInfo{Version: "1.2.3", Date: "2026-01-01", Commit: "abc123"}, info)
}

func TestInit_MetricsRoute(t *testing.T) {
	router := newRoutedHandler(t).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newRoutedHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "route-trace")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "route-trace", rec.Header().Get(traceIDHeader))
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newRoutedHandler(t).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantAllow string
	}{
		{"POST /version", http.MethodPost, "/version", "GET"},
		{"GET /auth/login", http.MethodGet, "/auth/login", "POST"},
		{"PATCH /api/crud", http.MethodPatch, "/api/crud", "GET, POST, PUT, DELETE"},
	}

	router := newRoutedHandler(t).Init()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}
