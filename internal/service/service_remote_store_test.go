// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/mock"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/internal/validators"
	"github.com/MKhiriev/go-kv-sync/models"
)

func newInitializedRemote(t *testing.T, keys []string, values map[string]string) RemoteStoreService {
	t.Helper()
	svc := NewRemoteStoreService(store.NewMemoryRemoteRepository(), logger.Nop())
	_, err := svc.Initialize(context.Background(), models.InitializeRequest{InitData: values, SelectedKeys: keys})
	require.NoError(t, err)
	return svc
}

func TestRemoteStore_Initialize(t *testing.T) {
	ctx := context.Background()
	svc := NewRemoteStoreService(store.NewMemoryRemoteRepository(), logger.Nop())

	state, err := svc.Initialize(ctx, models.InitializeRequest{
		InitData:     map[string]string{"favs": "a,b", "hidden": "x"},
		SelectedKeys: []string{"favs", "cfg", "favs"},
	})
	require.NoError(t, err)
	assert.True(t, state.Initialized)
	assert.Equal(t, []string{"cfg", "favs"}, state.EnabledKeys)
	assert.Equal(t, map[string]string{"favs": "a,b"}, state.Values, "values of unselected keys are not stored")

	// повторная инициализация без force запрещена
	_, err = svc.Initialize(ctx, models.InitializeRequest{SelectedKeys: []string{"other"}})
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	// force без данных очищает хранилище
	state, err = svc.Initialize(ctx, models.InitializeRequest{Force: true})
	require.NoError(t, err)
	assert.False(t, state.Initialized)
	assert.Empty(t, state.Values)
	assert.Empty(t, state.EnabledKeys)
}

func TestRemoteStore_SyncAppliesOperations(t *testing.T) {
	ctx := context.Background()
	svc := newInitializedRemote(t, []string{"favs", "cfg"}, map[string]string{"favs": "a,b", "cfg": "v1"})

	state, err := svc.Sync(ctx, models.PendingChanges{
		Operations: []models.Operation{
			add("favs", "c"),
			add("favs", "a"),
			remove("favs", "b"),
			remove("favs", "zzz"),
			set("cfg", "v2"),
			add("hidden", "x"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "a,c", state.Values["favs"])
	assert.Equal(t, "v2", state.Values["cfg"])
	assert.NotContains(t, state.Values, "hidden", "operations on disabled keys are ignored")
}

func TestRemoteStore_SyncNotes(t *testing.T) {
	ctx := context.Background()
	svc := newInitializedRemote(t, []string{"favs"}, nil)

	older := fixedNow.Add(-time.Hour)
	newer := fixedNow

	_, err := svc.Sync(ctx, models.PendingChanges{Notes: []models.NoteUpdate{
		{EntityID: "1", Text: "first", Timestamp: &newer},
		{EntityID: "2", Text: "to delete", Timestamp: &older},
	}})
	require.NoError(t, err)

	state, err := svc.Sync(ctx, models.PendingChanges{Notes: []models.NoteUpdate{
		{EntityID: "1", Text: "stale", Timestamp: &older},
		{EntityID: "2", Timestamp: &newer},
		{EntityID: "3", Text: "no date"},
	}})
	require.NoError(t, err)

	assert.Equal(t, "first", state.Notes["1"].Text, "older update does not overwrite a newer note")
	assert.NotContains(t, state.Notes, "2")
	assert.Equal(t, "no date", state.Notes["3"].Text)

	view, err := svc.GetStorage(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, view)
}

func TestRemoteStore_UpdateEnabledKeys(t *testing.T) {
	ctx := context.Background()
	svc := newInitializedRemote(t, []string{"favs"}, map[string]string{"favs": "a"})

	state, err := svc.UpdateEnabledKeys(ctx, []string{"hidden", "favs"})
	require.NoError(t, err)
	assert.Equal(t, []string{"favs", "hidden"}, state.EnabledKeys)
	assert.Equal(t, "a", state.Values["favs"])
}

func TestRemoteStore_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRemoteRepository(ctrl)
	svc := NewRemoteStoreService(repo, logger.Nop())
	ctx := context.Background()

	dbErr := errors.New("database is locked")
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.RemoteState{}, dbErr)
	repo.EXPECT().View(gomock.Any()).Return(models.RemoteState{}, dbErr)

	_, err := svc.Sync(ctx, models.PendingChanges{})
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.GetStorage(ctx)
	assert.ErrorIs(t, err, dbErr)
}

func TestRemoteStoreValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(svc RemoteStoreService) error
		wantErr error
	}{
		{
			name: "sync with internal key",
			call: func(svc RemoteStoreService) error {
				_, err := svc.Sync(ctx, models.PendingChanges{Operations: []models.Operation{set("SS_settings", "{}")}})
				return err
			},
			wantErr: validators.ErrInternalKey,
		},
		{
			name: "sync with unknown action",
			call: func(svc RemoteStoreService) error {
				_, err := svc.Sync(ctx, models.PendingChanges{Operations: []models.Operation{{Action: "toggle", Key: "favs", Value: "a"}}})
				return err
			},
			wantErr: validators.ErrInvalidAction,
		},
		{
			name: "note without entity",
			call: func(svc RemoteStoreService) error {
				_, err := svc.Sync(ctx, models.PendingChanges{Notes: []models.NoteUpdate{{Text: "x"}}})
				return err
			},
			wantErr: validators.ErrEmptyEntityID,
		},
		{
			name: "initialize with unselected data",
			call: func(svc RemoteStoreService) error {
				_, err := svc.Initialize(ctx, models.InitializeRequest{
					InitData:     map[string]string{"favs": "a"},
					SelectedKeys: []string{"cfg"},
				})
				return err
			},
			wantErr: validators.ErrUnselectedKey,
		},
		{
			name: "duplicate enabled keys",
			call: func(svc RemoteStoreService) error {
				_, err := svc.UpdateEnabledKeys(ctx, []string{"favs", "favs"})
				return err
			},
			wantErr: validators.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockRemoteStoreService(ctrl)
			svc := NewRemoteStoreValidationService().Wrap(inner)

			err := tt.call(svc)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemoteStoreValidation_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockRemoteStoreService(ctrl)
	svc := NewRemoteStoreValidationService().Wrap(inner)
	ctx := context.Background()

	queue := models.PendingChanges{Operations: []models.Operation{add("favs", "a")}}
	inner.EXPECT().Sync(ctx, queue).Return(models.RemoteState{Initialized: true}, nil)
	inner.EXPECT().GetStorage(ctx).Return(models.RemoteState{}, nil)

	state, err := svc.Sync(ctx, queue)
	require.NoError(t, err)
	assert.True(t, state.Initialized)

	_, err = svc.GetStorage(ctx)
	require.NoError(t, err)
}
