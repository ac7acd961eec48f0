// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAction   = errors.New("invalid action")
	ErrEmptyKey        = errors.New("key cannot be empty")
	ErrInternalKey     = errors.New("key is reserved for device-local state")
	ErrInvalidSetValue = errors.New("set member must be non-empty and contain no separator")
	ErrEmptyEntityID   = errors.New("note entity id cannot be empty")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrUnselectedKey   = errors.New("init data contains a key that is not selected")
)
