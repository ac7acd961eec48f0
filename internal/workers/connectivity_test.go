// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kv-sync/internal/adapter"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/mock"
	"github.com/MKhiriev/go-kv-sync/models"
)

const testEndpoint = "http://remote.test/exec"

type monitorMocks struct {
	adapter  *mock.MockServerAdapter
	settings *mock.MockClientSettingsService
	job      *mock.MockClientSyncJob
}

func newMonitor(t *testing.T, interval time.Duration) (*connectivityMonitor, monitorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := monitorMocks{
		adapter:  mock.NewMockServerAdapter(ctrl),
		settings: mock.NewMockClientSettingsService(ctrl),
		job:      mock.NewMockClientSyncJob(ctrl),
	}
	w := NewConnectivityMonitor(m.adapter, m.settings, m.job, interval, logger.Nop())
	return w.(*connectivityMonitor), m
}

func withEndpoint(endpoint string) models.SyncSettings {
	st := models.DefaultSyncSettings()
	st.Endpoint = endpoint
	return st
}

// ── probe ──

func TestConnectivityMonitor_Probe(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    bool
	}{
		{name: "ping ok", pingErr: nil, want: true},
		{name: "network error", pingErr: fmt.Errorf("%w: connection refused", adapter.ErrNetwork), want: false},
		{name: "timeout", pingErr: adapter.ErrTimeout, want: false},
		{name: "failure envelope still proves reachability", pingErr: &adapter.ApplicationError{Status: 500, Message: "boom"}, want: true},
		{name: "unparseable body still proves reachability", pingErr: &adapter.ParseError{Excerpt: "<html>", Err: errors.New("bad")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := newMonitor(t, time.Minute)
			m.settings.EXPECT().Get(gomock.Any()).Return(withEndpoint(testEndpoint), nil)
			m.adapter.EXPECT().PingURL(gomock.Any(), testEndpoint).Return(tt.pingErr)

			assert.Equal(t, tt.want, w.probe(context.Background()))
		})
	}
}

func TestConnectivityMonitor_ProbeWithoutEndpoint(t *testing.T) {
	w, m := newMonitor(t, time.Minute)
	m.settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSyncSettings(), nil)
	// PingURL не вызывается: адрес не задан

	assert.True(t, w.probe(context.Background()))
}

func TestConnectivityMonitor_ProbeSettingsError(t *testing.T) {
	w, m := newMonitor(t, time.Minute)
	m.settings.EXPECT().Get(gomock.Any()).Return(models.SyncSettings{}, errors.New("db closed"))

	assert.True(t, w.probe(context.Background()))
}

// ── Run ──

func TestConnectivityMonitor_RunReportsAndRecovers(t *testing.T) {
	w, m := newMonitor(t, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.settings.EXPECT().Get(gomock.Any()).Return(withEndpoint(testEndpoint), nil).AnyTimes()

	recovered := make(chan struct{})
	gomock.InOrder(
		m.adapter.EXPECT().PingURL(gomock.Any(), testEndpoint).Return(adapter.ErrNetwork),
		m.job.EXPECT().SetOnline(false),
		m.adapter.EXPECT().PingURL(gomock.Any(), testEndpoint).Return(nil),
		m.job.EXPECT().SetOnline(true).Do(func(bool) {
			close(recovered)
			cancel()
		}),
	)

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-recovered:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not report recovery")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestConnectivityMonitor_BackoffIsCapped(t *testing.T) {
	w, _ := newMonitor(t, 50*time.Millisecond)

	// первая пауза считается от InitialInterval, а не от значения по умолчанию
	first := w.retry.NextBackOff()
	require.LessOrEqual(t, first, w.retry.InitialInterval*3/2)
	require.Positive(t, first)

	for range 10 {
		d := w.retry.NextBackOff()
		// jitter may add up to half of the capped interval
		require.LessOrEqual(t, d, 75*time.Millisecond)
		require.Positive(t, d)
	}

	w.retry.Reset()
	assert.LessOrEqual(t, w.retry.NextBackOff(), 75*time.Millisecond)
}
