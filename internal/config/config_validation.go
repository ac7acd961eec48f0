// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

// InternalKeyPrefix marks local-only keys that never take part in sync.
const InternalKeyPrefix = "SS_"

// validate checks the merged [StructuredConfig]. Component specific rules
// live on the client and server views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PingTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < MinSyncInterval {
		return fmt.Errorf("%w: sync interval %s is below %s", ErrInvalidWorkerConfigs, cfg.Workers.SyncInterval, MinSyncInterval)
	}
	if cfg.Workers.SuccessDisplay <= 0 || cfg.Workers.ConnectivityInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.ConfigKey == "" || cfg.App.NotesKey == "" {
		return ErrInvalidAppConfigs
	}
	internal := func(k string) bool { return strings.HasPrefix(k, InternalKeyPrefix) }
	if internal(cfg.App.NotesKey) || slices.ContainsFunc(cfg.App.ConfirmedKeys, internal) {
		return fmt.Errorf("%w: keys with prefix %q are local-only", ErrInvalidAppConfigs, InternalKeyPrefix)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
