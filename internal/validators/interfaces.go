// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks protocol requests received by the reference
// remote store before they reach the storage layer.
//
// A Validator accepts any value it knows and an optional list of field names
// restricting the checks to those fields. Without fields every rule of the
// value's type is applied.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
