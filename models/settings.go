// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

const (
	// DefaultSyncIntervalSeconds is the interval applied to fresh settings.
	DefaultSyncIntervalSeconds = 60
	// MinSyncIntervalSeconds is the lower bound accepted for the interval.
	MinSyncIntervalSeconds = 60
)

// SyncSettings is the locally owned sync configuration of one device.
type SyncSettings struct {
	// Endpoint is the remote store URL.
	Endpoint string `json:"sheetUrl"`
	// Enabled turns periodic reconciliation on.
	Enabled bool `json:"syncEnabled"`
	// IntervalSeconds is the period between rounds.
	IntervalSeconds int `json:"syncInterval"`
	// LastSync is the epoch-millisecond timestamp of the last successful round.
	LastSync int64 `json:"lastSync"`
	// Initialized is set once the remote has been bootstrapped from this device
	// or adopted by it.
	Initialized bool `json:"syncInitialized"`
	// SelectedKeys are the keys enabled for sync.
	SelectedKeys []string `json:"selectedKeys"`
}

// DefaultSyncSettings returns the settings of a device that never synced.
func DefaultSyncSettings() SyncSettings {
	return SyncSettings{
		IntervalSeconds: DefaultSyncIntervalSeconds,
		SelectedKeys:    []string{},
	}
}

// Interval returns IntervalSeconds as a duration.
func (s SyncSettings) Interval() time.Duration {
	return time.Duration(s.IntervalSeconds) * time.Second
}

// LastSuccess returns LastSync as a time value. The zero epoch is returned
// for a device that never synced.
func (s SyncSettings) LastSuccess() time.Time {
	return time.UnixMilli(s.LastSync)
}

// Configured reports whether a round may run: an endpoint is set and the
// remote has been initialized.
func (s SyncSettings) Configured() bool {
	return s.Endpoint != "" && s.Initialized
}

// IsSelected reports whether key is enabled for sync.
func (s SyncSettings) IsSelected(key string) bool {
	return slices.Contains(s.SelectedKeys, key)
}

// Clone returns a copy that does not share the SelectedKeys backing array.
func (s SyncSettings) Clone() SyncSettings {
	out := s
	out.SelectedKeys = slices.Clone(s.SelectedKeys)
	if out.SelectedKeys == nil {
		out.SelectedKeys = []string{}
	}
	return out
}
