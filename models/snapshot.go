// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteSnapshot is the canonical view of a remote response. Whatever shape the
// remote used on the wire, the adapter normalises it into this type.
//
// A key missing from Values means "unchanged", never "deleted".
type RemoteSnapshot struct {
	Values      map[string]string `json:"values"`
	Notes       map[string]Note   `json:"notes,omitempty"`
	HasNotes    bool              `json:"-"`
	Initialized bool              `json:"initialized"`
	EnabledKeys []string          `json:"enabled_keys,omitempty"`
}

// Value returns the snapshot value for key.
func (r RemoteSnapshot) Value(key string) (string, bool) {
	v, ok := r.Values[key]
	return v, ok
}
