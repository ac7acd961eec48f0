// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-kv-sync/internal/adapter"
	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

type clientSyncService struct {
	kv       store.KeyValueStore
	adapter  adapter.ServerAdapter
	queue    ClientQueueService
	settings ClientSettingsService
	status   ClientStatusService

	configKey     string
	notesKey      string
	confirmedKeys []string

	inFlight atomic.Bool

	now    func() time.Time
	logger *logger.Logger
}

// NewClientSyncService returns the Reconciler. Keys listed in
// appCfg.ConfirmedKeys are only accepted as synced when the snapshot echoes
// the value that was sent.
func NewClientSyncService(
	kv store.KeyValueStore,
	serverAdapter adapter.ServerAdapter,
	queue ClientQueueService,
	settings ClientSettingsService,
	status ClientStatusService,
	appCfg config.ClientApp,
	log *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		kv:            kv,
		adapter:       serverAdapter,
		queue:         queue,
		settings:      settings,
		status:        status,
		configKey:     appCfg.ConfigKey,
		notesKey:      appCfg.NotesKey,
		confirmedKeys: appCfg.ConfirmedKeys,
		now:           time.Now,
		logger:        log,
	}
}

func (s *clientSyncService) SyncNow(ctx context.Context) (models.RoundResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return models.RoundResult{}, ErrRoundInFlight
	}
	defer s.inFlight.Store(false)

	st, err := s.settings.Get(ctx)
	if err != nil {
		return models.RoundResult{}, fmt.Errorf("load settings: %w", err)
	}
	if err = readyForRound(st); err != nil {
		return models.RoundResult{}, err
	}
	if !s.status.Online() {
		return models.RoundResult{}, ErrOffline
	}
	if err = s.adapter.SetEndpoint(st.Endpoint); err != nil {
		return models.RoundResult{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err = s.status.StartRound(); err != nil {
		return models.RoundResult{}, fmt.Errorf("start round: %w", err)
	}

	result, err := s.round(ctx, st)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.SyncNow").
			Str("kind", ErrorKind(err)).
			Msg("sync round failed, pending changes kept")
		if stateErr := s.status.Fail(err); stateErr != nil {
			s.logger.Debug().Err(stateErr).Str("func", "clientSyncService.SyncNow").Msg("state not moved to error")
		}
		return models.RoundResult{}, err
	}

	if stateErr := s.status.Succeed(); stateErr != nil {
		s.logger.Debug().Err(stateErr).Str("func", "clientSyncService.SyncNow").Msg("state not moved to success")
	}

	s.logger.Info().Str("func", "clientSyncService.SyncNow").
		Int("uploaded", result.Uploaded).
		Int("applied", result.Applied).
		Strs("requeued", result.Requeued).
		Msg("sync round completed")
	return result, nil
}

func readyForRound(st models.SyncSettings) error {
	switch {
	case st.Endpoint == "":
		return ErrEndpointNotSet
	case !st.Initialized:
		return ErrNotInitialized
	case !st.Enabled:
		return ErrSyncDisabled
	}
	return nil
}

func (s *clientSyncService) round(ctx context.Context, st models.SyncSettings) (models.RoundResult, error) {
	pending, err := s.queue.Drain(ctx)
	if err != nil {
		return models.RoundResult{}, err
	}
	payload := syncedOnly(pending, st)
	if dropped := pending.Len() - payload.Len(); dropped > 0 {
		s.logger.Debug().Str("func", "clientSyncService.round").Int("dropped", dropped).
			Msg("discarding queued entries of keys no longer synced")
	}

	// the configuration Set rides along in memory only; the log keeps it
	// only when the remote does not confirm it
	cfgOp, changed, err := s.configChange(ctx, st)
	if err != nil {
		return models.RoundResult{}, err
	}
	if changed {
		payload.Operations = coalesceOperation(slices.Clone(payload.Operations), cfgOp)
	}

	snapshot, err := s.adapter.Sync(ctx, payload)
	if err != nil {
		return models.RoundResult{}, fmt.Errorf("sync request: %w", err)
	}

	requeue := s.unconfirmed(payload, snapshot, st)

	values := make(map[string]string, len(snapshot.Values))
	for key, value := range snapshot.Values {
		if !st.IsSelected(key) || isInternalKey(key) {
			continue
		}
		if sent, ok := requeue[key]; ok {
			value = sent
		}
		values[key] = value
	}
	if err = s.kv.SetMany(ctx, values); err != nil {
		return models.RoundResult{}, fmt.Errorf("apply snapshot: %w", err)
	}

	if snapshot.HasNotes {
		if err = storeNotes(ctx, s.kv, s.notesKey, snapshot.Notes); err != nil {
			return models.RoundResult{}, err
		}
	}

	if err = s.queue.Acknowledge(ctx, pending); err != nil {
		return models.RoundResult{}, fmt.Errorf("clear pending changes: %w", err)
	}

	requeued := make([]string, 0, len(requeue))
	for key, value := range requeue {
		s.logger.Warn().Str("func", "clientSyncService.round").Str("key", key).
			Msg("remote did not confirm value, keeping local value and re-queuing")
		if err = s.queue.Enqueue(ctx, models.Operation{Action: models.ActionSet, Key: key, Value: value}); err != nil {
			return models.RoundResult{}, fmt.Errorf("re-queue %s: %w", key, err)
		}
		requeued = append(requeued, key)
	}
	slices.Sort(requeued)

	if _, unconfirmed := requeue[s.configKey]; !unconfirmed && st.IsSelected(s.configKey) {
		if err = s.markConfigSynced(ctx); err != nil {
			return models.RoundResult{}, err
		}
	}

	completedAt := s.now()
	if _, err = s.settings.RecordSuccess(ctx, completedAt); err != nil {
		return models.RoundResult{}, err
	}

	return models.RoundResult{
		Uploaded:    payload.Len(),
		Applied:     len(values),
		Requeued:    requeued,
		CompletedAt: completedAt,
	}, nil
}

// configChange returns a Set of the configuration key when its local value
// differs from the last value the remote confirmed.
func (s *clientSyncService) configChange(ctx context.Context, st models.SyncSettings) (models.Operation, bool, error) {
	if s.configKey == "" || !st.IsSelected(s.configKey) {
		return models.Operation{}, false, nil
	}

	local, found, err := s.kv.Get(ctx, s.configKey)
	if err != nil {
		return models.Operation{}, false, fmt.Errorf("read configuration key: %w", err)
	}
	if !found || local == "" {
		return models.Operation{}, false, nil
	}

	synced, _, err := s.kv.Get(ctx, lastSyncedConfigKey)
	if err != nil {
		return models.Operation{}, false, fmt.Errorf("read last synced configuration: %w", err)
	}
	if synced == local {
		return models.Operation{}, false, nil
	}

	return models.Operation{Action: models.ActionSet, Key: s.configKey, Value: local}, true, nil
}

func (s *clientSyncService) markConfigSynced(ctx context.Context) error {
	local, found, err := s.kv.Get(ctx, s.configKey)
	if err != nil {
		return fmt.Errorf("read configuration key: %w", err)
	}
	if !found || local == "" {
		return nil
	}
	if err = s.kv.Set(ctx, lastSyncedConfigKey, local); err != nil {
		return fmt.Errorf("record last synced configuration: %w", err)
	}
	return nil
}

// unconfirmed returns the confirmed keys whose sent Set value is not echoed
// by the snapshot, mapped to the value that was sent.
func (s *clientSyncService) unconfirmed(payload models.PendingChanges, snapshot models.RemoteSnapshot, st models.SyncSettings) map[string]string {
	out := make(map[string]string)
	for _, key := range s.confirmedKeys {
		if !st.IsSelected(key) {
			continue
		}
		sent, ok := payload.LastSet(key)
		if !ok {
			continue
		}
		if remote, ok := snapshot.Value(key); !ok || remote != sent {
			out[key] = sent
		}
	}
	return out
}

// syncedOnly drops operations on keys that are not selected. Notes travel on
// their own track and are always sent.
func syncedOnly(p models.PendingChanges, st models.SyncSettings) models.PendingChanges {
	out := models.PendingChanges{
		Operations: make([]models.Operation, 0, len(p.Operations)),
		Notes:      append([]models.NoteUpdate{}, p.Notes...),
	}
	for _, op := range p.Operations {
		if st.IsSelected(op.Key) && !isInternalKey(op.Key) {
			out.Operations = append(out.Operations, op)
		}
	}
	return out
}

// ErrorKind names the failure class of a round error for logs and the CLI.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, adapter.ErrTimeout):
		return "timeout"
	case errors.Is(err, adapter.ErrNetwork):
		return "network"
	case errors.Is(err, adapter.ErrApplication):
		return "application"
	case errors.Is(err, adapter.ErrParse):
		return "parse"
	case errors.Is(err, ErrConfig):
		return "config"
	}
	return "local"
}
