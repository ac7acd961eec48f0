// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the lifecycle state exposed to the presentation layer.
type SyncState string

const (
	StateOffline SyncState = "offline"
	StateNormal  SyncState = "normal"
	StateSyncing SyncState = "syncing"
	StateSuccess SyncState = "success"
	StateError   SyncState = "error"
)

// StatusChange is emitted on every Sync State transition.
type StatusChange struct {
	From SyncState `json:"from"`
	To   SyncState `json:"to"`
	At   time.Time `json:"at"`
	// Err is set when the transition was caused by a failed round.
	Err error `json:"-"`
}

// StatusSnapshot is everything a status widget may show.
type StatusSnapshot struct {
	State             SyncState     `json:"state"`
	Pending           int           `json:"pending"`
	TimeUntilNextSync time.Duration `json:"time_until_next_sync"`
	LastSync          time.Time     `json:"last_sync"`
	Online            bool          `json:"online"`
}

// RoundResult summarises a successful reconciliation round.
type RoundResult struct {
	Uploaded    int       `json:"uploaded"`
	Applied     int       `json:"applied"`
	Requeued    []string  `json:"requeued,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}
