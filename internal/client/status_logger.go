// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/models"
)

// statusLogger writes every Sync State transition to the log.
type statusLogger struct {
	status service.ClientStatusService
	logger *logger.Logger
}

func newStatusLogger(status service.ClientStatusService, log *logger.Logger) *statusLogger {
	return &statusLogger{status: status, logger: log}
}

func (s *statusLogger) Run(ctx context.Context) {
	changes, unsubscribe := s.status.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			s.log(change)
		}
	}
}

func (s *statusLogger) log(change models.StatusChange) {
	event := s.logger.Info()
	if change.To == models.StateError {
		event = s.logger.Warn().Err(change.Err)
	}
	event.Str("from", string(change.From)).
		Str("to", string(change.To)).
		Time("at", change.At).
		Msg("sync state changed")
}
