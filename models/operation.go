// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Action is the kind of mutation carried by an [Operation].
type Action string

const (
	// ActionAdd adds Value to the delimited ID set stored under Key.
	ActionAdd Action = "add"
	// ActionRemove removes Value from the delimited ID set stored under Key.
	ActionRemove Action = "remove"
	// ActionSet replaces the whole value stored under Key (configuration
	// documents, notes maps and other scalar blobs).
	ActionSet Action = "set"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionSet:
		return true
	}
	return false
}

// Opposite returns the action that cancels a. Set has no opposite and is
// returned unchanged.
func (a Action) Opposite() Action {
	switch a {
	case ActionAdd:
		return ActionRemove
	case ActionRemove:
		return ActionAdd
	}
	return a
}

// Operation is a single not-yet-uploaded mutation of a synced key.
type Operation struct {
	Action Action `json:"action"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// SamePair reports whether o and other target the same (key, value) pair.
func (o Operation) SamePair(other Operation) bool {
	return o.Key == other.Key && o.Value == other.Value
}
