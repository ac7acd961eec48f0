// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

// loadNotes decodes the notes map stored under key. A missing key is an
// empty map.
func loadNotes(ctx context.Context, kv store.KeyValueStore, key string) (map[string]models.Note, error) {
	value, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}

	notes := make(map[string]models.Note)
	if !found || value == "" {
		return notes, nil
	}
	if err = json.Unmarshal([]byte(value), &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// storeNotes replaces the notes map stored under key.
func storeNotes(ctx context.Context, kv store.KeyValueStore, key string, notes map[string]models.Note) error {
	if notes == nil {
		notes = map[string]models.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err = kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}
