// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kv-sync/internal/adapter"
	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/mock"
	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/internal/validators"
	"github.com/MKhiriev/go-kv-sync/models"
)

type mockRemote = mock.MockRemoteStoreService

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/exec", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	h, _, _ := newMockedHandler(t)
	router := h.Init()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"ping action", "/exec?action=ping", http.StatusOK, `{"status":"success"}`},
		{"bare GET", "/", http.StatusOK, `{"status":"success"}`},
		{"other action", "/exec?action=sync", http.StatusBadRequest, `{"status":"error","error":{"message":"only the ping action is served over GET"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ── Dispatch ────────────────────────────────────────────────────────────────

func TestExec_Dispatch(t *testing.T) {
	date := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	state := models.RemoteState{
		Values:      map[string]string{"favs": "a,b", "hidden": "x"},
		Notes:       map[string]models.Note{"42": {Text: "hi", Date: &date}},
		EnabledKeys: []string{"favs"},
		Initialized: true,
	}
	wantData := `{"status":"success","data":{"success":true,"storage_data":{"favs":"a,b"},` +
		`"notes":{"42":{"text":"hi","date":"2026-10-01T12:00:00Z"}},"initialized":true,"enabled_keys":["favs"]}}`

	tests := []struct {
		name   string
		body   string
		expect func(remote *mockRemote)
	}{
		{
			name: "sync",
			body: `{"action":"sync","queue":{"operations":[{"action":"add","key":"favs","value":"b"}],"notes":[]}}`,
			expect: func(remote *mockRemote) {
				remote.EXPECT().Sync(gomock.Any(), models.PendingChanges{
					Operations: []models.Operation{{Action: models.ActionAdd, Key: "favs", Value: "b"}},
					Notes:      []models.NoteUpdate{},
				}).Return(state, nil)
			},
		},
		{
			name: "initialize",
			body: `{"action":"initialize","initData":{"favs":"a,b"},"selectedKeys":["favs"],"force":true}`,
			expect: func(remote *mockRemote) {
				remote.EXPECT().Initialize(gomock.Any(), models.InitializeRequest{
					InitData:     map[string]string{"favs": "a,b"},
					SelectedKeys: []string{"favs"},
					Force:        true,
				}).Return(state, nil)
			},
		},
		{
			name: "update enabled keys",
			body: `{"action":"update_enabled_keys","enabledKeys":["favs"]}`,
			expect: func(remote *mockRemote) {
				remote.EXPECT().UpdateEnabledKeys(gomock.Any(), []string{"favs"}).Return(state, nil)
			},
		},
		{
			name: "get storage",
			body: `{"action":"get_storage","requestedKeys":[]}`,
			expect: func(remote *mockRemote) {
				remote.EXPECT().GetStorage(gomock.Any()).Return(state, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, remote, _ := newMockedHandler(t)
			tt.expect(remote)

			rec := post(t, h.Init(), tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, wantData, rec.Body.String())
		})
	}
}

func TestExec_PingOverPost(t *testing.T) {
	h, _, _ := newMockedHandler(t)

	rec := post(t, h.Init(), `{"action":"ping"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}

func TestExec_EmptyNotesArePresent(t *testing.T) {
	h, remote, _ := newMockedHandler(t)
	remote.EXPECT().GetStorage(gomock.Any()).Return(models.RemoteState{}, nil)

	rec := post(t, h.Init(), `{"action":"get_storage"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes":{}`)
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestExec_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantInMsg  string
	}{
		{
			name:       "invalid json",
			body:       `{"action":`,
			wantStatus: http.StatusBadRequest,
			wantInMsg:  "invalid request body",
		},
		{
			name:       "unknown action",
			body:       `{"action":"explode"}`,
			wantStatus: http.StatusBadRequest,
			wantInMsg:  "unknown action",
		},
		{
			name:       "already initialized",
			body:       `{"action":"initialize","selectedKeys":["favs"]}`,
			err:        fmt.Errorf("initialize remote store: %w", service.ErrAlreadyInitialized),
			wantStatus: http.StatusConflict,
			wantInMsg:  "already initialized",
		},
		{
			name:       "validation",
			body:       `{"action":"initialize","selectedKeys":["SS_settings"]}`,
			err:        fmt.Errorf("error during initialize request validation: %w", validators.ErrInternalKey),
			wantStatus: http.StatusBadRequest,
			wantInMsg:  "reserved",
		},
		{
			name:       "storage failure",
			body:       `{"action":"initialize","selectedKeys":["favs"]}`,
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantInMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, remote, _ := newMockedHandler(t)
			if tt.err != nil {
				remote.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(models.RemoteState{}, tt.err)
			}

			rec := post(t, h.Init(), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"error"`)
			assert.Contains(t, rec.Body.String(), tt.wantInMsg)
		})
	}
}

// ── Protocol round trip ─────────────────────────────────────────────────────

// Клиентский адаптер и эталонный сервер должны понимать друг друга.
func TestExec_AdapterRoundTrip(t *testing.T) {
	services := &service.Services{
		RemoteStoreService: service.NewRemoteStoreValidationService().Wrap(
			service.NewRemoteStoreService(store.NewMemoryRemoteRepository(), logger.Nop()),
		),
	}
	server := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	defer server.Close()

	client, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    server.URL + "/exec",
		RequestTimeout: 2 * time.Second,
		PingTimeout:    time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx))

	probe, err := client.GetStorage(ctx, []string{})
	require.NoError(t, err)
	assert.False(t, probe.Initialized)

	_, err = client.Initialize(ctx, models.InitializeRequest{
		InitData:     map[string]string{"favs": "a"},
		SelectedKeys: []string{"favs"},
	})
	require.NoError(t, err)

	date := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	snap, err := client.Sync(ctx, models.PendingChanges{
		Operations: []models.Operation{{Action: models.ActionAdd, Key: "favs", Value: "b"}},
		Notes:      []models.NoteUpdate{{EntityID: "42", Text: "hi", Timestamp: &date}},
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b", snap.Values["favs"])
	assert.True(t, snap.HasNotes)
	assert.Equal(t, "hi", snap.Notes["42"].Text)

	_, err = client.Initialize(ctx, models.InitializeRequest{SelectedKeys: []string{"other"}})
	assert.ErrorIs(t, err, adapter.ErrApplication)
	assert.Contains(t, err.Error(), "already initialized")

	require.NoError(t, client.UpdateEnabledKeys(ctx, []string{"favs", "hidden"}))
	probe, err = client.GetStorage(ctx, []string{})
	require.NoError(t, err)
	assert.Equal(t, []string{"favs", "hidden"}, probe.EnabledKeys)
}
