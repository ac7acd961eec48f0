// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
)

// keyValueStore is the SQLite implementation of [KeyValueStore] over the
// "kv" table.
type keyValueStore struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueStore constructs a [KeyValueStore] on an open client database.
func NewKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	return &keyValueStore{
		DB:     db,
		logger: log,
	}
}

func (s *keyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	var value string
	err := s.QueryRowContext(ctx, getValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "keyValueStore.Get").Str("key", key).Msg("failed to read value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *keyValueStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if _, err := s.ExecContext(ctx, upsertValue, key, value); err != nil {
		s.logger.Err(err).Str("func", "keyValueStore.Set").Str("key", key).Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *keyValueStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "" {
			return ErrEmptyKey
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertValue)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		defer stmt.Close()

		for _, k := range keys {
			if _, err = stmt.ExecContext(ctx, k, values[k]); err != nil {
				return fmt.Errorf("%w: key %q: %w", ErrExecutingStatement, k, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "keyValueStore.SetMany").Int("count", len(keys)).Msg("failed to write values")
		return err
	}

	return nil
}

func (s *keyValueStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if _, err := s.ExecContext(ctx, deleteValue, key); err != nil {
		s.logger.Err(err).Str("func", "keyValueStore.Remove").Str("key", key).Msg("failed to remove value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *keyValueStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.QueryContext(ctx, listKeys)
	if err != nil {
		s.logger.Err(err).Str("func", "keyValueStore.Keys").Msg("failed to list keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, 32)
	for rows.Next() {
		var k string
		if err = rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, k)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (s *keyValueStore) Snapshot(ctx context.Context, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	query, args, err := sq.Select("key", "value").
		From("kv").
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "keyValueStore.Snapshot").Int("keys", len(keys)).Msg("failed to read snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err = rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out[k] = v
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (s *keyValueStore) Mutate(ctx context.Context, key string, fn func(current string, found bool) (string, error)) error {
	if key == "" {
		return ErrEmptyKey
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var current string
		found := true
		err := tx.QueryRowContext(ctx, getValue, key).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			found = false
		} else if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, upsertValue, key, next); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
