// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/mock"
	"github.com/MKhiriev/go-kv-sync/models"
)

// memoryKV: простая реализация store.KeyValueStore в памяти для тестов.
type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryKV) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *memoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryKV) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *memoryKV) Snapshot(_ context.Context, keys []string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (m *memoryKV) Mutate(_ context.Context, key string, fn func(string, bool) (string, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, found := m.data[key]
	next, err := fn(current, found)
	if err != nil {
		return err
	}
	m.data[key] = next
	return nil
}

func (m *memoryKV) raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func testAppConfig() config.ClientApp {
	return config.ClientApp{
		ConfigKey:     "app_config",
		NotesKey:      "user_notes",
		ConfirmedKeys: []string{"app_config"},
	}
}

// testClient собирает клиентские сервисы поверх memoryKV и мока адаптера.
type testClient struct {
	kv       *memoryKV
	adapter  *mock.MockServerAdapter
	queue    *clientQueueService
	settings *clientSettingsService
	status   *clientStatusService
	sync     *clientSyncService
	init     *clientInitService
	storage  *clientStorageService
}

func newTestClient(t *testing.T, ctrl *gomock.Controller) *testClient {
	t.Helper()

	kv := newMemoryKV()
	adapterMock := mock.NewMockServerAdapter(ctrl)
	log := logger.Nop()
	app := testAppConfig()

	queue := NewClientQueueService(kv, log).(*clientQueueService)
	settings := NewClientSettingsService(kv, models.DefaultSyncSettings(), log).(*clientSettingsService)
	status := NewClientStatusService(queue, settings, time.Hour, log).(*clientStatusService)
	status.now = func() time.Time { return fixedNow }

	syncSvc := NewClientSyncService(kv, adapterMock, queue, settings, status, app, log).(*clientSyncService)
	syncSvc.now = func() time.Time { return fixedNow }

	initSvc := NewClientInitService(kv, adapterMock, queue, settings, app, log).(*clientInitService)
	initSvc.now = func() time.Time { return fixedNow }

	storage := NewClientStorageService(kv, queue, settings, syncSvc, app, log).(*clientStorageService)
	storage.now = func() time.Time { return fixedNow }

	return &testClient{
		kv:       kv,
		adapter:  adapterMock,
		queue:    queue,
		settings: settings,
		status:   status,
		sync:     syncSvc,
		init:     initSvc,
		storage:  storage,
	}
}

// configure переводит устройство в состояние "инициализировано и включено".
func (c *testClient) configure(t *testing.T, keys ...string) {
	t.Helper()
	ctx := context.Background()
	_, err := c.settings.SetEndpoint(ctx, "http://remote.test/exec")
	require.NoError(t, err)
	_, err = c.settings.MarkInitialized(ctx, keys, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
}
