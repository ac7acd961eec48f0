// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings.
type ClientApp struct {
	// ConfigKey is the key of the shared configuration document.
	ConfigKey string
	// NotesKey is the key of the notes map.
	NotesKey string
	// ConfirmedKeys are the keys whose outgoing Set must be confirmed by the
	// remote snapshot. Always contains ConfigKey.
	ConfirmedKeys []string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the log file path; empty selects the default location.
	LogFile string
}

// ClientAdapter holds the Sync Client settings.
type ClientAdapter struct {
	// HTTPAddress is the initial endpoint used before one is stored in the
	// device settings.
	HTTPAddress string
	// RequestTimeout bounds every protocol call.
	RequestTimeout time.Duration
	// PingTimeout bounds the liveness probe.
	PingTimeout time.Duration
}

// ClientDB contains the local database settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job timings.
type ClientWorkers struct {
	// SyncInterval is the interval applied to fresh sync settings.
	SyncInterval time.Duration
	// SuccessDisplay is how long the success state is held.
	SuccessDisplay time.Duration
	// ConnectivityInterval is the connectivity probe period.
	ConnectivityInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ConfigKey:     cfg.App.ConfigKey,
			NotesKey:      cfg.App.NotesKey,
			ConfirmedKeys: confirmedKeys(cfg.App.ConfigKey, cfg.App.ConfirmedKeys),
			LogLevel:      cfg.App.LogLevel,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PingTimeout:    cfg.Adapter.PingTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{
			SyncInterval:         cfg.Workers.SyncInterval,
			SuccessDisplay:       cfg.Workers.SuccessDisplay,
			ConnectivityInterval: cfg.Workers.ConnectivityInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}

// confirmedKeys returns extra with configKey prepended, without duplicates.
func confirmedKeys(configKey string, extra []string) []string {
	keys := make([]string, 0, len(extra)+1)
	seen := make(map[string]struct{}, len(extra)+1)
	for _, k := range append([]string{configKey}, extra...) {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
