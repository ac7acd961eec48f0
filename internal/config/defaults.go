// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values used when no source sets a field.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second

	DefaultClientDSN            = "kvsync.db"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultPingTimeout          = 10 * time.Second
	DefaultSyncInterval         = 60 * time.Second
	DefaultSuccessDisplay       = 2 * time.Second
	DefaultConnectivityInterval = 15 * time.Second

	DefaultConfigKey = "app_config"
	DefaultNotesKey  = "user_notes"
	DefaultLogLevel  = "debug"
)

// MinSyncInterval is the lower bound accepted for the sync interval.
const MinSyncInterval = 60 * time.Second

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ConfigKey: DefaultConfigKey,
			NotesKey:  DefaultNotesKey,
			LogLevel:  DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			PingTimeout:    DefaultPingTimeout,
		},
		Workers: Workers{
			SyncInterval:         DefaultSyncInterval,
			SuccessDisplay:       DefaultSuccessDisplay,
			ConnectivityInterval: DefaultConnectivityInterval,
		},
	}
}
