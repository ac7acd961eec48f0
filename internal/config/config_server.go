// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the reference remote store view of [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// DSN is the PostgreSQL connection string. Empty selects the in-memory
	// repository.
	DSN string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetServerConfig builds and validates the remote store configuration.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		LogLevel:       cfg.App.LogLevel,
	}

	return serverCfg, serverCfg.validate()
}
