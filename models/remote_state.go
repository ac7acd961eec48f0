// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// RemoteState is the complete content of the reference remote store.
type RemoteState struct {
	Values      map[string]string
	Notes       map[string]Note
	EnabledKeys []string
	Initialized bool
}

// NewRemoteState returns an empty, uninitialized state.
func NewRemoteState() RemoteState {
	return RemoteState{
		Values:      map[string]string{},
		Notes:       map[string]Note{},
		EnabledKeys: []string{},
	}
}

// Clone returns a deep copy of s.
func (s RemoteState) Clone() RemoteState {
	out := NewRemoteState()
	for k, v := range s.Values {
		out.Values[k] = v
	}
	for k, v := range s.Notes {
		out.Notes[k] = v
	}
	out.EnabledKeys = append(out.EnabledKeys, s.EnabledKeys...)
	out.Initialized = s.Initialized
	return out
}

// IsEnabled reports whether key is synced by the remote.
func (s RemoteState) IsEnabled(key string) bool {
	return slices.Contains(s.EnabledKeys, key)
}

// Snapshot returns the values of the requested enabled keys, or of every
// enabled key when requested is empty.
func (s RemoteState) Snapshot(requested []string) map[string]string {
	keys := s.EnabledKeys
	if len(requested) > 0 {
		keys = requested
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if !s.IsEnabled(k) {
			continue
		}
		if v, ok := s.Values[k]; ok {
			out[k] = v
		}
	}
	return out
}
