// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-kv-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the persistent string key-value store of the client.
// Every method is safe for concurrent use by several goroutines and several
// processes sharing the same database file.
type KeyValueStore interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// SetMany stores every pair of values in one transaction.
	SetMany(ctx context.Context, values map[string]string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)
	// Snapshot returns the stored values of keys. Missing keys are omitted.
	Snapshot(ctx context.Context, keys []string) (map[string]string, error)
	// Mutate atomically replaces the value under key with the result of fn.
	// fn receives the current value and whether it exists. When fn returns an
	// error nothing is written and the error is returned.
	Mutate(ctx context.Context, key string, fn func(current string, found bool) (string, error)) error
}

// RemoteRepository persists the content of the reference remote store.
type RemoteRepository interface {
	// View returns the current state.
	View(ctx context.Context) (models.RemoteState, error)
	// Update runs fn on the current state and persists the result atomically.
	// When fn returns an error nothing is persisted.
	Update(ctx context.Context, fn func(state *models.RemoteState) error) (models.RemoteState, error)
}
