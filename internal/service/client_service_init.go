// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kv-sync/internal/adapter"
	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

type clientInitService struct {
	kv       store.KeyValueStore
	adapter  adapter.ServerAdapter
	queue    ClientQueueService
	settings ClientSettingsService

	configKey string
	notesKey  string

	now    func() time.Time
	logger *logger.Logger
}

func NewClientInitService(
	kv store.KeyValueStore,
	serverAdapter adapter.ServerAdapter,
	queue ClientQueueService,
	settings ClientSettingsService,
	appCfg config.ClientApp,
	log *logger.Logger,
) ClientInitService {
	return &clientInitService{
		kv:        kv,
		adapter:   serverAdapter,
		queue:     queue,
		settings:  settings,
		configKey: appCfg.ConfigKey,
		notesKey:  appCfg.NotesKey,
		now:       time.Now,
		logger:    log,
	}
}

// Initialize probes the remote first. A remote that reports itself
// initialized with at least one enabled key is adopted and nothing is
// uploaded. Otherwise the local snapshot of the selected keys seeds it, unless
// no key is selected.
func (s *clientInitService) Initialize(ctx context.Context) (models.RemoteSnapshot, error) {
	st, err := s.endpointSettings(ctx)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}

	probe, probeErr := s.adapter.GetStorage(ctx, []string{})
	if probeErr == nil && probe.Initialized && len(probe.EnabledKeys) > 0 {
		return s.adopt(ctx, probe)
	}

	if len(st.SelectedKeys) == 0 {
		if probeErr != nil {
			return models.RemoteSnapshot{}, fmt.Errorf("%w: remote could not be probed (%v), refusing to guess its content", ErrNoKeysSelected, probeErr)
		}
		return models.RemoteSnapshot{}, fmt.Errorf("%w: remote is empty, select keys to seed it", ErrNoKeysSelected)
	}
	if probeErr != nil {
		s.logger.Warn().Err(probeErr).Str("func", "clientInitService.Initialize").
			Msg("probe failed, attempting to seed remote")
	}

	return s.seed(ctx, st)
}

func (s *clientInitService) adopt(ctx context.Context, probe models.RemoteSnapshot) (models.RemoteSnapshot, error) {
	keys := make([]string, 0, len(probe.EnabledKeys))
	for _, key := range probe.EnabledKeys {
		if !isInternalKey(key) {
			keys = append(keys, key)
		}
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		if v, ok := probe.Value(key); ok {
			values[key] = v
		}
	}
	if err := s.kv.SetMany(ctx, values); err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("adopt remote values: %w", err)
	}

	if probe.HasNotes {
		if err := storeNotes(ctx, s.kv, s.notesKey, probe.Notes); err != nil {
			return models.RemoteSnapshot{}, err
		}
	}

	if err := s.finish(ctx, keys, values); err != nil {
		return models.RemoteSnapshot{}, err
	}

	s.logger.Info().Str("func", "clientInitService.adopt").
		Strs("enabled_keys", keys).
		Int("values", len(values)).
		Msg("adopted initialized remote")
	return probe, nil
}

func (s *clientInitService) seed(ctx context.Context, st models.SyncSettings) (models.RemoteSnapshot, error) {
	local, err := s.kv.Snapshot(ctx, st.SelectedKeys)
	if err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("read local snapshot: %w", err)
	}

	snap, err := s.adapter.Initialize(ctx, models.InitializeRequest{
		InitData:     local,
		SelectedKeys: st.SelectedKeys,
	})
	if err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("seed remote: %w", err)
	}

	if err = s.finish(ctx, st.SelectedKeys, local); err != nil {
		return models.RemoteSnapshot{}, err
	}

	s.logger.Info().Str("func", "clientInitService.seed").
		Strs("enabled_keys", st.SelectedKeys).
		Int("values", len(local)).
		Msg("seeded remote with local snapshot")
	return snap, nil
}

// finish drops the pre-initialization queue, records the confirmed
// configuration value and marks the device initialized.
func (s *clientInitService) finish(ctx context.Context, keys []string, values map[string]string) error {
	if err := s.queue.Clear(ctx); err != nil {
		return err
	}

	if cfgValue, ok := values[s.configKey]; ok && cfgValue != "" {
		if err := s.kv.Set(ctx, lastSyncedConfigKey, cfgValue); err != nil {
			return fmt.Errorf("record last synced configuration: %w", err)
		}
	}

	if _, err := s.settings.MarkInitialized(ctx, keys, s.now()); err != nil {
		return err
	}
	return nil
}

func (s *clientInitService) TestConnection(ctx context.Context, url string) error {
	if err := s.adapter.PingURL(ctx, url); err != nil {
		return fmt.Errorf("test connection: %w", err)
	}
	if err := s.adapter.SetEndpoint(url); err != nil {
		return fmt.Errorf("test connection: %w", err)
	}
	if _, err := s.settings.SetEndpoint(ctx, s.adapter.Endpoint()); err != nil {
		return err
	}
	return nil
}

func (s *clientInitService) SelectKeys(ctx context.Context, keys []string) (models.SyncSettings, error) {
	before, err := s.settings.Get(ctx)
	if err != nil {
		return models.SyncSettings{}, err
	}

	after, err := s.settings.SetSelectedKeys(ctx, keys)
	if err != nil {
		return models.SyncSettings{}, err
	}
	if !after.Configured() {
		return after, nil
	}

	for _, key := range after.SelectedKeys {
		if before.IsSelected(key) {
			continue
		}
		value, found, err := s.kv.Get(ctx, key)
		if err != nil {
			return after, fmt.Errorf("read newly selected key %s: %w", key, err)
		}
		if !found {
			continue
		}
		if err = s.queue.Enqueue(ctx, models.Operation{Action: models.ActionSet, Key: key, Value: value}); err != nil {
			return after, err
		}
	}

	if err = s.adapter.SetEndpoint(after.Endpoint); err == nil {
		err = s.adapter.UpdateEnabledKeys(ctx, after.SelectedKeys)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientInitService.SelectKeys").
			Msg("failed to inform remote about enabled keys")
	}

	return after, nil
}

func (s *clientInitService) ClearRemote(ctx context.Context) error {
	if _, err := s.endpointSettings(ctx); err != nil {
		return err
	}

	_, err := s.adapter.Initialize(ctx, models.InitializeRequest{
		InitData:     map[string]string{},
		SelectedKeys: []string{},
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("clear remote: %w", err)
	}

	if err = s.queue.Clear(ctx); err != nil {
		return err
	}
	if _, err = s.settings.ClearInitialized(ctx); err != nil {
		return err
	}

	s.logger.Info().Str("func", "clientInitService.ClearRemote").Msg("remote store cleared")
	return nil
}

func (s *clientInitService) Reset(ctx context.Context) error {
	if err := s.kv.Remove(ctx, pendingChangesKey); err != nil {
		return fmt.Errorf("remove pending changes: %w", err)
	}
	if err := s.kv.Remove(ctx, lastSyncedConfigKey); err != nil {
		return fmt.Errorf("remove last synced configuration: %w", err)
	}
	return s.settings.Reset(ctx)
}

func (s *clientInitService) endpointSettings(ctx context.Context) (models.SyncSettings, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return models.SyncSettings{}, err
	}
	if st.Endpoint == "" {
		return models.SyncSettings{}, ErrEndpointNotSet
	}
	if err = s.adapter.SetEndpoint(st.Endpoint); err != nil {
		return models.SyncSettings{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return st, nil
}
