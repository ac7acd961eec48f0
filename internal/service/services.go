// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

type Services struct {
	RemoteStoreService RemoteStoreService
	AppInfoService     AppInfoService
}

func NewServices(repositories *store.Repositories, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	remoteStore := NewRemoteStoreValidationService().Wrap(
		NewRemoteStoreService(repositories.RemoteRepository, logger.Component("remote-store")),
	)

	return &Services{
		RemoteStoreService: remoteStore,
		AppInfoService:     appInfo,
	}, nil
}
