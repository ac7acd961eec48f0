// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
)

// Repositories groups the storage layer of the reference remote.
type Repositories struct {
	RemoteRepository RemoteRepository

	db *DB
}

// NewRepositories connects to PostgreSQL when cfg.DSN is set and falls back
// to the in-memory repository otherwise.
func NewRepositories(ctx context.Context, cfg config.ServerConfig, log *logger.Logger) (*Repositories, error) {
	if cfg.DSN == "" {
		log.Warn().Str("func", "NewRepositories").Msg("no database configured, remote state is kept in memory")
		return &Repositories{RemoteRepository: NewMemoryRemoteRepository()}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		RemoteRepository: NewRemoteRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the database connection, if any.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
