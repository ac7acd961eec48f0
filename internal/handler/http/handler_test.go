// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/mock"
	"github.com/MKhiriev/go-kv-sync/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// newMockedHandler builds a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, *mock.MockRemoteStoreService, *mock.MockAppInfoService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	remote := mock.NewMockRemoteStoreService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		RemoteStoreService: remote,
		AppInfoService:     appInfo,
	}, logger.Nop())
	return h, remote, appInfo
}

func TestInit_Routes(t *testing.T) {
	h, _, appInfo := newMockedHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()
	router := h.Init()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/?action=ping", http.StatusOK},
		{http.MethodGet, "/exec?action=ping", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodPut, "/exec", http.StatusNotFound},
		{http.MethodPost, "/version", http.StatusNotFound},
		{http.MethodGet, "/nonexistent", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "every response carries a trace id")
		})
	}
}

func TestInit_UnsupportedMethodGetsEnvelope(t *testing.T) {
	h, _, _ := newMockedHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/exec", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":{"message":"DELETE is not supported on /exec"}}`, rec.Body.String())
}
