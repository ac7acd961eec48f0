// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-kv-sync/internal/adapter"
	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

type ClientServices struct {
	QueueService    ClientQueueService
	SettingsService ClientSettingsService
	StatusService   ClientStatusService
	SyncService     ClientSyncService
	InitService     ClientInitService
	StorageService  ClientStorageService
	SyncJob         ClientSyncJob
}

func NewClientServices(kv store.KeyValueStore, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	defaults := models.DefaultSyncSettings()
	defaults.Endpoint = serverAdapter.Endpoint()
	defaults.IntervalSeconds = int(cfg.Workers.SyncInterval.Seconds())

	queueSvc := NewClientQueueService(kv, log.Component("queue"))
	settingsSvc := NewClientSettingsService(kv, defaults, log.Component("settings"))
	statusSvc := NewClientStatusService(queueSvc, settingsSvc, cfg.Workers.SuccessDisplay, log.Component("status"))
	syncSvc := NewClientSyncService(kv, serverAdapter, queueSvc, settingsSvc, statusSvc, cfg.App, log.Component("reconciler"))

	return &ClientServices{
		QueueService:    queueSvc,
		SettingsService: settingsSvc,
		StatusService:   statusSvc,
		SyncService:     syncSvc,
		InitService:     NewClientInitService(kv, serverAdapter, queueSvc, settingsSvc, cfg.App, log.Component("init")),
		StorageService:  NewClientStorageService(kv, queueSvc, settingsSvc, syncSvc, cfg.App, log.Component("storage")),
		SyncJob:         NewClientSyncJob(syncSvc, settingsSvc, statusSvc, log.Component("scheduler")),
	}
}
