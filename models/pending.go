// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PendingChanges is the persisted queue of local mutations that have not been
// confirmed by the remote yet. It is owned by the local client and cleared only
// after a round succeeds.
type PendingChanges struct {
	Operations []Operation  `json:"operations"`
	Notes      []NoteUpdate `json:"notes"`
}

// Len returns the total number of queued entries of both tracks.
func (p PendingChanges) Len() int {
	return len(p.Operations) + len(p.Notes)
}

// Empty reports whether nothing is queued.
func (p PendingChanges) Empty() bool {
	return p.Len() == 0
}

// Clone returns a deep copy so callers can hold a stable view of the queue.
func (p PendingChanges) Clone() PendingChanges {
	out := PendingChanges{
		Operations: make([]Operation, len(p.Operations)),
		Notes:      make([]NoteUpdate, len(p.Notes)),
	}
	copy(out.Operations, p.Operations)
	copy(out.Notes, p.Notes)
	return out
}

// LastSet returns the value of the most recent Set operation for key, if any.
func (p PendingChanges) LastSet(key string) (string, bool) {
	for i := len(p.Operations) - 1; i >= 0; i-- {
		op := p.Operations[i]
		if op.Action == ActionSet && op.Key == key {
			return op.Value, true
		}
	}
	return "", false
}
