// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/models"
)

func newTestSettings() (*clientSettingsService, *memoryKV) {
	kv := newMemoryKV()
	return NewClientSettingsService(kv, models.DefaultSyncSettings(), logger.Nop()).(*clientSettingsService), kv
}

func TestSettings_Defaults(t *testing.T) {
	s, _ := newTestSettings()

	st, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSyncIntervalSeconds, st.IntervalSeconds)
	assert.False(t, st.Configured())
	assert.Empty(t, st.SelectedKeys)
	assert.NotNil(t, st.SelectedKeys)
}

func TestSettings_Updates(t *testing.T) {
	s, kv := newTestSettings()
	ctx := context.Background()

	st, err := s.SetEndpoint(ctx, "  http://remote.test/exec  ")
	require.NoError(t, err)
	assert.Equal(t, "http://remote.test/exec", st.Endpoint)

	_, err = s.SetInterval(ctx, 30)
	assert.ErrorIs(t, err, ErrIntervalTooShort)

	st, err = s.SetInterval(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, st.Interval())

	st, err = s.SetSelectedKeys(ctx, []string{" favs ", "cfg", "favs", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"cfg", "favs"}, st.SelectedKeys)

	_, err = s.SetSelectedKeys(ctx, []string{"favs", "SS_settings"})
	assert.ErrorIs(t, err, ErrInternalKey)

	// документ хранится в KVS под внутренним ключом
	assert.Contains(t, kv.raw(settingsKey), `"sheetUrl":"http://remote.test/exec"`)

	fresh := NewClientSettingsService(kv, models.DefaultSyncSettings(), logger.Nop())
	loaded, err := fresh.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, loaded)
}

func TestSettings_InitializationLifecycle(t *testing.T) {
	s, _ := newTestSettings()
	ctx := context.Background()

	_, err := s.SetEndpoint(ctx, "http://remote.test/exec")
	require.NoError(t, err)

	st, err := s.MarkInitialized(ctx, []string{"favs"}, fixedNow)
	require.NoError(t, err)
	assert.True(t, st.Configured())
	assert.True(t, st.Enabled)
	assert.True(t, st.LastSuccess().Equal(fixedNow))

	later := fixedNow.Add(time.Minute)
	st, err = s.RecordSuccess(ctx, later)
	require.NoError(t, err)
	assert.Equal(t, later.UnixMilli(), st.LastSync)

	st, err = s.ClearInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, st.Initialized)
	assert.False(t, st.Enabled)
	assert.Equal(t, "http://remote.test/exec", st.Endpoint)

	require.NoError(t, s.Reset(ctx))
	st, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.Endpoint)
}

func TestSettings_SubscribeSeesLatest(t *testing.T) {
	s, _ := newTestSettings()
	ctx := context.Background()

	ch, unsubscribe := s.Subscribe()

	_, err := s.SetEnabled(ctx, true)
	require.NoError(t, err)
	_, err = s.SetInterval(ctx, 120)
	require.NoError(t, err)

	select {
	case st := <-ch:
		assert.True(t, st.Enabled)
		assert.Equal(t, 120, st.IntervalSeconds)
	case <-time.After(time.Second):
		t.Fatal("no settings notification")
	}

	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)

	_, err = s.SetEnabled(ctx, false)
	require.NoError(t, err)
}

func TestSettings_CorruptDocument(t *testing.T) {
	s, kv := newTestSettings()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, settingsKey, "garbage"))

	st, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSyncSettings(), st)
}
