// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getValue = `SELECT value FROM kv WHERE key = ?;`

	upsertValue = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteValue = `DELETE FROM kv WHERE key = ?;`

	listKeys = `SELECT key FROM kv ORDER BY key;`
)
