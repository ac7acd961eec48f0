// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package client

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/mock"
)

func TestVisibilityOf(t *testing.T) {
	visible, ok := visibilityOf(syscall.SIGUSR1)
	assert.True(t, ok)
	assert.False(t, visible)

	visible, ok = visibilityOf(syscall.SIGUSR2)
	assert.True(t, ok)
	assert.True(t, visible)

	_, ok = visibilityOf(syscall.SIGHUP)
	assert.False(t, ok)
}

func TestApp_WatchVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)

	shown := make(chan struct{})
	gomock.InOrder(
		job.EXPECT().SetVisible(false),
		job.EXPECT().SetVisible(true).Do(func(bool) { close(shown) }),
	)

	app := &App{job: job, logger: logger.Nop()}
	signals := make(chan os.Signal, 3)
	signals <- syscall.SIGUSR1
	signals <- syscall.SIGHUP
	signals <- syscall.SIGUSR2

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.watchVisibility(ctx, signals)

	select {
	case <-shown:
	case <-time.After(time.Second):
		t.Fatal("visibility signals were not applied")
	}
}
