// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// IDSetSeparator delimits the members of an ID set value.
const IDSetSeparator = ","

// SplitIDSet returns the members of a delimited ID set. Empty members are
// dropped.
func SplitIDSet(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, IDSetSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AddToIDSet returns value with id appended. changed is false when id was
// already a member.
func AddToIDSet(value, id string) (result string, changed bool) {
	ids := SplitIDSet(value)
	for _, existing := range ids {
		if existing == id {
			return strings.Join(ids, IDSetSeparator), false
		}
	}
	return strings.Join(append(ids, id), IDSetSeparator), true
}

// RemoveFromIDSet returns value without id. changed is false when id was not
// a member.
func RemoveFromIDSet(value, id string) (result string, changed bool) {
	ids := SplitIDSet(value)
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing == id {
			changed = true
			continue
		}
		out = append(out, existing)
	}
	return strings.Join(out, IDSetSeparator), changed
}

// MergeIDSets returns the union of current and incoming, keeping the order of
// current and appending new members of incoming. added lists the new members.
func MergeIDSets(current, incoming string) (result string, added []string) {
	result = current
	for _, id := range SplitIDSet(incoming) {
		var changed bool
		if result, changed = AddToIDSet(result, id); changed {
			added = append(added, id)
		}
	}
	return result, added
}
