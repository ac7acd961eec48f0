// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/mock"
	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/models"
)

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil)
	assert.ErrorIs(t, err, errNoServices)

	_, err = NewApp(&Runtime{})
	assert.ErrorIs(t, err, errNoServices)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)
	status := mock.NewMockClientStatusService(ctrl)
	settings := mock.NewMockClientSettingsService(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	changes := make(chan models.StatusChange)
	job.EXPECT().Start(gomock.Any())
	job.EXPECT().Stop()
	job.EXPECT().SetOnline(true).AnyTimes()
	status.EXPECT().Subscribe().Return((<-chan models.StatusChange)(changes), func() {})
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSyncSettings(), nil).AnyTimes()

	app, err := NewApp(&Runtime{
		Config:  &config.ClientConfig{Workers: config.ClientWorkers{ConnectivityInterval: time.Hour}},
		Adapter: serverAdapter,
		Services: &service.ClientServices{
			SyncJob:         job,
			StatusService:   status,
			SettingsService: settings,
		},
		Logger: logger.Nop(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

// ── status logger ──

func TestStatusLogger_LogsTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	status := mock.NewMockClientStatusService(ctrl)

	changes := make(chan models.StatusChange, 2)
	unsubscribed := make(chan struct{})
	status.EXPECT().Subscribe().Return((<-chan models.StatusChange)(changes), func() { close(unsubscribed) })

	var buf bytes.Buffer
	l := newStatusLogger(status, &logger.Logger{Logger: zerolog.New(&buf)})

	changes <- models.StatusChange{From: models.StateNormal, To: models.StateSyncing, At: time.Now()}
	changes <- models.StatusChange{From: models.StateSyncing, To: models.StateError, At: time.Now(), Err: errors.New("remote down")}
	close(changes)

	l.Run(context.Background())

	<-unsubscribed
	out := buf.String()
	assert.Contains(t, out, `"to":"syncing"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "remote down")
}

func TestStatusLogger_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	status := mock.NewMockClientStatusService(ctrl)

	calls := 0
	status.EXPECT().Subscribe().Return(make(<-chan models.StatusChange), func() { calls++ })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	newStatusLogger(status, logger.Nop()).Run(ctx)

	assert.Equal(t, 1, calls)
}
