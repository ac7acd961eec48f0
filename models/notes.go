// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteUpdate is the last-write digest for the note attached to one entity.
// An empty Text marks the note as deleted.
type NoteUpdate struct {
	EntityID  string     `json:"fanficId"`
	Text      string     `json:"text"`
	Timestamp *time.Time `json:"date"`
}

// Deleted reports whether the update removes the note.
func (n NoteUpdate) Deleted() bool {
	return n.Text == ""
}

// Note is a stored note as it appears inside the notes map.
type Note struct {
	Text string     `json:"text"`
	Date *time.Time `json:"date,omitempty"`
}
