// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the Sync Client: the wire protocol spoken with
// the remote store over HTTP.
//
// Every response shape the remote may use is normalised into
// [models.RemoteSnapshot] here, and every failure is reported as one of the
// error kinds in errors.go. The adapter never retries; retry is the job of the
// scheduler.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-kv-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the protocol client of the remote store.
type ServerAdapter interface {
	// SetEndpoint validates and stores the endpoint URL used by every call.
	SetEndpoint(raw string) error

	// Endpoint returns the current endpoint URL, or an empty string.
	Endpoint() string

	// Ping probes the endpoint for liveness with the ping timeout.
	Ping(ctx context.Context) error

	// PingURL probes a candidate endpoint without storing it.
	PingURL(ctx context.Context, raw string) error

	// Sync uploads the queue and returns the full snapshot of every synced key.
	Sync(ctx context.Context, queue models.PendingChanges) (models.RemoteSnapshot, error)

	// Initialize seeds the remote. With Force set the remote is cleared
	// unconditionally.
	Initialize(ctx context.Context, req models.InitializeRequest) (models.RemoteSnapshot, error)

	// UpdateEnabledKeys tells the remote which keys this device syncs.
	UpdateEnabledKeys(ctx context.Context, keys []string) error

	// GetStorage probes the remote without mutating it. An empty
	// requestedKeys asks for every enabled key.
	GetStorage(ctx context.Context, requestedKeys []string) (models.RemoteSnapshot, error)
}
