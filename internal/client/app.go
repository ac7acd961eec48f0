// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/internal/workers"
)

var errNoServices = errors.New("client services are not configured")

var _ Client = (*App)(nil)

// App is the long-running client process.
type App struct {
	job     service.ClientSyncJob
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp assembles the background workers of rt.
func NewApp(rt *Runtime) (*App, error) {
	if rt == nil || rt.Services == nil {
		return nil, errNoServices
	}
	svcs := rt.Services
	log := rt.Logger

	return &App{
		job: svcs.SyncJob,
		workers: workers.NewWorkers(
			workers.NewSyncJobWorker(svcs.SyncJob, log.Component("sync-job")),
			workers.NewConnectivityMonitor(rt.Adapter, svcs.SettingsService, svcs.SyncJob,
				rt.Config.Workers.ConnectivityInterval, log.Component("connectivity")),
			newStatusLogger(svcs.StatusService, log.Component("status")),
		),
		logger: log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	visibility := make(chan os.Signal, 1)
	if sigs := visibilitySignals(); len(sigs) > 0 {
		signal.Notify(visibility, sigs...)
		defer signal.Stop(visibility)
	}
	go a.watchVisibility(ctx, visibility)

	a.logger.Info().Msg("client started")
	a.workers.Run(ctx)
	a.logger.Info().Msg("client stopped gracefully")

	return nil
}

func (a *App) watchVisibility(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-signals:
			visible, ok := visibilityOf(sig)
			if !ok {
				continue
			}
			a.logger.Debug().Bool("visible", visible).Msg("visibility changed")
			a.job.SetVisible(visible)
		}
	}
}
