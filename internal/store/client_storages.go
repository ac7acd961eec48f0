// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
)

// ClientStorages groups the client storage layer.
type ClientStorages struct {
	// KeyValueStore is the SQLite-backed local key-value store.
	KeyValueStore KeyValueStore

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN (creating it
// if needed), applies the client migrations and returns the wired storages.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("func", "NewClientStorages").Msg("creating client storages")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyValueStore: NewKeyValueStore(db, log),
		db:            db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
