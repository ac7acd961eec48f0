// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-kv-sync/internal/adapter"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/service"
)

// minRetryInterval is the first delay after the remote went unreachable.
const minRetryInterval = time.Second

// connectivityMonitor probes the configured endpoint and reports the result
// to the scheduler. While offline the probe is retried with exponential
// backoff capped at the regular interval.
type connectivityMonitor struct {
	adapter  adapter.ServerAdapter
	settings service.ClientSettingsService
	job      service.ClientSyncJob
	interval time.Duration
	retry    *backoff.ExponentialBackOff
	logger   *logger.Logger
}

// NewConnectivityMonitor builds the worker feeding [service.ClientSyncJob.SetOnline].
func NewConnectivityMonitor(serverAdapter adapter.ServerAdapter, settings service.ClientSettingsService,
	job service.ClientSyncJob, interval time.Duration, log *logger.Logger) Worker {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = min(minRetryInterval, interval)
	retry.MaxInterval = interval
	retry.MaxElapsedTime = 0
	// NewExponentialBackOff already reset with the defaults
	retry.Reset()

	return &connectivityMonitor{
		adapter:  serverAdapter,
		settings: settings,
		job:      job,
		interval: interval,
		retry:    retry,
		logger:   log,
	}
}

func (m *connectivityMonitor) Run(ctx context.Context) {
	online := true
	for {
		reachable := m.probe(ctx)
		if ctx.Err() != nil {
			return
		}

		if reachable != online {
			m.logger.Info().Bool("online", reachable).Msg("connectivity changed")
			online = reachable
		}
		m.job.SetOnline(reachable)

		wait := m.interval
		if reachable {
			m.retry.Reset()
		} else {
			wait = m.retry.NextBackOff()
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// probe reports whether the remote answered. A device without an endpoint
// is treated as online so it never shows the offline state. Any response,
// including a failure envelope, proves the network path works.
func (m *connectivityMonitor) probe(ctx context.Context) bool {
	st, err := m.settings.Get(ctx)
	if err != nil {
		m.logger.Err(err).Msg("read settings for connectivity probe")
		return true
	}
	if st.Endpoint == "" {
		return true
	}

	err = m.adapter.PingURL(ctx, st.Endpoint)
	switch {
	case err == nil:
		return true
	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, adapter.ErrTimeout):
		m.logger.Debug().Err(err).Msg("remote unreachable")
		return false
	default:
		return true
	}
}
