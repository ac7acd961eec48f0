// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. Each binary maps the fields it needs into its own view
// ([ClientConfig], [ServerConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: which local keys have special
	// sync semantics and how the process logs.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings: the SQLite file of the client or
	// the PostgreSQL DSN of the remote store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeout of the reference remote.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound settings of the Sync Client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the timings of the client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ConfigKey is the local key holding the shared configuration document.
	// Outgoing replacements of it are confirmed against the remote snapshot.
	// Env: APP_CONFIG_KEY
	ConfigKey string `env:"CONFIG_KEY"`

	// NotesKey is the local key holding the notes map that remote notes are
	// applied to wholesale.
	// Env: APP_NOTES_KEY
	NotesKey string `env:"NOTES_KEY"`

	// ConfirmedKeys lists additional keys whose Set operations must be
	// confirmed by the remote snapshot or re-queued.
	// Env: APP_CONFIRMED_KEYS (comma separated)
	ConfirmedKeys []string `env:"CONFIRMED_KEYS" envSeparator:","`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log file path. Empty selects a file next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the SQLite file path on the client or the PostgreSQL connection
	// string on the remote store. An empty DSN on the remote selects the
	// in-memory repository.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the reference remote.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the Sync Client settings.
type Adapter struct {
	// HTTPAddress is the initial remote endpoint URL. It is only used when
	// the device has no endpoint stored in its settings yet.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every protocol call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PingTimeout bounds the liveness probe.
	// Env: ADAPTER_PING_TIMEOUT
	PingTimeout time.Duration `env:"PING_TIMEOUT"`
}

// Workers holds the timings of the client background jobs.
type Workers struct {
	// SyncInterval is the interval applied to fresh sync settings.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SuccessDisplay is how long the success state is shown before settling.
	// Env: WORKERS_SUCCESS_DISPLAY
	SuccessDisplay time.Duration `env:"SUCCESS_DISPLAY"`

	// ConnectivityInterval is the period of the connectivity probe.
	// Env: WORKERS_CONNECTIVITY_INTERVAL
	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// flags, environment, the optional JSON file and the defaults, in that order
// of precedence.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
