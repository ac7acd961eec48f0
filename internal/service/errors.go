// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is returned when sync is requested on a device that is not
	// configured, not initialized or disabled. It is a guarded no-op, not a
	// failure.
	ErrConfig = errors.New("sync is not configured")

	ErrEndpointNotSet = fmt.Errorf("%w: endpoint is not set", ErrConfig)
	ErrNotInitialized = fmt.Errorf("%w: remote is not initialized", ErrConfig)
	ErrSyncDisabled   = fmt.Errorf("%w: sync is disabled", ErrConfig)
	// ErrNoKeysSelected is the initialization safety guard: a device with no
	// selected keys never seeds a remote whose content is unknown.
	ErrNoKeysSelected = fmt.Errorf("%w: no keys selected for sync", ErrConfig)

	ErrOffline       = errors.New("client is offline")
	ErrRoundInFlight = errors.New("sync round already in flight")

	ErrInvalidOperation = errors.New("invalid operation")
	ErrInternalKey      = fmt.Errorf("%w: key is internal", ErrInvalidOperation)
	ErrIntervalTooShort = errors.New("sync interval is too short")

	ErrAlreadyInitialized    = errors.New("remote store is already initialized")
	ErrUnknownAction         = errors.New("unknown action")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
