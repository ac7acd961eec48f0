// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kv-sync/internal/adapter"
	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/internal/store"
)

// Runtime holds the dependencies of one client process.
type Runtime struct {
	Config   *config.ClientConfig
	Adapter  adapter.ServerAdapter
	Services *service.ClientServices
	Logger   *logger.Logger

	storages *store.ClientStorages
}

// NewRuntime opens the local database and builds the adapter and services.
// The caller must Close the runtime.
func NewRuntime(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Runtime, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.Component("adapter"))
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return &Runtime{
		Config:   cfg,
		Adapter:  serverAdapter,
		Services: service.NewClientServices(storages.KeyValueStore, serverAdapter, cfg, log),
		Logger:   log,
		storages: storages,
	}, nil
}

// Close releases the local database.
func (r *Runtime) Close() error {
	if r.storages == nil {
		return nil
	}
	return r.storages.Close()
}
