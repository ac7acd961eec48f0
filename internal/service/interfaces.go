// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-kv-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=RemoteStoreServiceWrapper

// RemoteStoreService implements the protocol actions of the reference remote
// store. Every method returns the resulting store content.
type RemoteStoreService interface {
	// Sync applies the queued operations and note updates in order and returns
	// the new state. Operations on keys that are not enabled are ignored.
	Sync(ctx context.Context, queue models.PendingChanges) (models.RemoteState, error)

	// Initialize seeds the store. It returns ErrAlreadyInitialized for a store
	// that already has enabled keys unless req.Force is set. Force with empty
	// data clears the store.
	Initialize(ctx context.Context, req models.InitializeRequest) (models.RemoteState, error)

	// UpdateEnabledKeys replaces the enabled key list.
	UpdateEnabledKeys(ctx context.Context, keys []string) (models.RemoteState, error)

	// GetStorage returns the state without mutating it.
	GetStorage(ctx context.Context) (models.RemoteState, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// RemoteStoreServiceWrapper decorates a RemoteStoreService with additional
// behaviour such as validation.
type RemoteStoreServiceWrapper interface {
	Wrap(RemoteStoreService) RemoteStoreService
}
