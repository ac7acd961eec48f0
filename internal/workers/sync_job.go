// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/service"
)

// syncJobWorker keeps the scheduler running for the lifetime of ctx.
type syncJobWorker struct {
	job    service.ClientSyncJob
	logger *logger.Logger
}

// NewSyncJobWorker adapts the scheduler to the [Worker] lifecycle.
func NewSyncJobWorker(job service.ClientSyncJob, log *logger.Logger) Worker {
	return &syncJobWorker{job: job, logger: log}
}

func (w *syncJobWorker) Run(ctx context.Context) {
	w.logger.Info().Msg("scheduler started")
	w.job.Start(ctx)

	<-ctx.Done()

	w.job.Stop()
	w.logger.Info().Msg("scheduler stopped")
}
