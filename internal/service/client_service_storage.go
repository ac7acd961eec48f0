// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

type clientStorageService struct {
	kv          store.KeyValueStore
	queue       ClientQueueService
	settings    ClientSettingsService
	syncService ClientSyncService

	configKey string
	notesKey  string

	now    func() time.Time
	logger *logger.Logger
}

func NewClientStorageService(
	kv store.KeyValueStore,
	queue ClientQueueService,
	settings ClientSettingsService,
	syncService ClientSyncService,
	appCfg config.ClientApp,
	log *logger.Logger,
) ClientStorageService {
	return &clientStorageService{
		kv:          kv,
		queue:       queue,
		settings:    settings,
		syncService: syncService,
		configKey:   appCfg.ConfigKey,
		notesKey:    appCfg.NotesKey,
		now:         time.Now,
		logger:      log,
	}
}

func (s *clientStorageService) SetValue(ctx context.Context, key, value string) error {
	if err := s.checkUserKey(key); err != nil {
		return err
	}

	if err := s.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return s.enqueueIfSynced(ctx, models.Operation{Action: models.ActionSet, Key: key, Value: value})
}

func (s *clientStorageService) AddToSet(ctx context.Context, key, id string) error {
	return s.mutateSet(ctx, models.ActionAdd, key, id)
}

func (s *clientStorageService) RemoveFromSet(ctx context.Context, key, id string) error {
	return s.mutateSet(ctx, models.ActionRemove, key, id)
}

func (s *clientStorageService) mutateSet(ctx context.Context, action models.Action, key, id string) error {
	if err := s.checkUserKey(key); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, models.IDSetSeparator) {
		return fmt.Errorf("%w: bad set member %q", ErrInvalidOperation, id)
	}

	var changed bool
	err := s.kv.Mutate(ctx, key, func(current string, _ bool) (string, error) {
		var next string
		if action == models.ActionAdd {
			next, changed = models.AddToIDSet(current, id)
		} else {
			next, changed = models.RemoveFromIDSet(current, id)
		}
		return next, nil
	})
	if err != nil {
		return fmt.Errorf("%s %s on %s: %w", action, id, key, err)
	}
	if !changed {
		return nil
	}

	return s.enqueueIfSynced(ctx, models.Operation{Action: action, Key: key, Value: id})
}

func (s *clientStorageService) SetNote(ctx context.Context, entityID, text string) error {
	if text == "" {
		return s.DeleteNote(ctx, entityID)
	}
	if entityID == "" {
		return fmt.Errorf("%w: empty entity id", ErrInvalidOperation)
	}

	now := s.now().UTC()
	notes, err := loadNotes(ctx, s.kv, s.notesKey)
	if err != nil {
		return err
	}
	notes[entityID] = models.Note{Text: text, Date: &now}
	if err = storeNotes(ctx, s.kv, s.notesKey, notes); err != nil {
		return err
	}

	return s.enqueueNoteIfSynced(ctx, models.NoteUpdate{EntityID: entityID, Text: text, Timestamp: &now})
}

func (s *clientStorageService) DeleteNote(ctx context.Context, entityID string) error {
	if entityID == "" {
		return fmt.Errorf("%w: empty entity id", ErrInvalidOperation)
	}

	notes, err := loadNotes(ctx, s.kv, s.notesKey)
	if err != nil {
		return err
	}
	if _, ok := notes[entityID]; !ok {
		return nil
	}
	delete(notes, entityID)
	if err = storeNotes(ctx, s.kv, s.notesKey, notes); err != nil {
		return err
	}

	now := s.now().UTC()
	return s.enqueueNoteIfSynced(ctx, models.NoteUpdate{EntityID: entityID, Timestamp: &now})
}

func (s *clientStorageService) Notes(ctx context.Context) (map[string]models.Note, error) {
	return loadNotes(ctx, s.kv, s.notesKey)
}

func (s *clientStorageService) Get(ctx context.Context, key string) (string, bool, error) {
	return s.kv.Get(ctx, key)
}

// Delete removes key locally. A synced key is cleared on the remote with an
// empty Set because a missing key in a snapshot means "unchanged".
func (s *clientStorageService) Delete(ctx context.Context, key string) error {
	if err := s.checkUserKey(key); err != nil {
		return err
	}

	if err := s.kv.Remove(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return s.enqueueIfSynced(ctx, models.Operation{Action: models.ActionSet, Key: key, Value: ""})
}

func (s *clientStorageService) List(ctx context.Context) (map[string]string, error) {
	return s.Export(ctx, nil)
}

func (s *clientStorageService) Export(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		all, err := s.kv.Keys(ctx)
		if err != nil {
			return nil, fmt.Errorf("list keys: %w", err)
		}
		keys = all
	}

	visible := make([]string, 0, len(keys))
	for _, k := range keys {
		if !isInternalKey(k) {
			visible = append(visible, k)
		}
	}

	out, err := s.kv.Snapshot(ctx, visible)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return out, nil
}

// Import merges entries the way a user expects from a backup file: ID sets
// gain the missing members, the configuration key is replaced and notes are
// merged with imported notes winning. Internal keys are ignored.
func (s *clientStorageService) Import(ctx context.Context, entries map[string]string) (map[string]int, error) {
	counts := make(map[string]int, len(entries))
	syncedChange := false

	for _, key := range slices.Sorted(maps.Keys(entries)) {
		value := entries[key]
		if isInternalKey(key) {
			s.logger.Warn().Str("func", "clientStorageService.Import").Str("key", key).Msg("skipping internal key")
			continue
		}

		var (
			n      int
			synced bool
			err    error
		)
		switch key {
		case s.notesKey:
			n, synced, err = s.importNotes(ctx, value)
		case s.configKey:
			n, synced, err = s.importValue(ctx, key, value)
		default:
			n, synced, err = s.importSet(ctx, key, value)
		}
		if err != nil {
			return counts, fmt.Errorf("import %s: %w", key, err)
		}
		counts[key] = n
		syncedChange = syncedChange || synced
	}

	if syncedChange && s.syncService != nil {
		s.syncAfterImport(ctx)
	}
	return counts, nil
}

func (s *clientStorageService) importValue(ctx context.Context, key, value string) (int, bool, error) {
	current, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return 0, false, err
	}
	if found && current == value {
		return 0, false, nil
	}
	if err = s.kv.Set(ctx, key, value); err != nil {
		return 0, false, err
	}

	synced, err := s.isSynced(ctx, key)
	if err != nil || !synced {
		return 1, false, err
	}
	return 1, true, s.queue.Enqueue(ctx, models.Operation{Action: models.ActionSet, Key: key, Value: value})
}

func (s *clientStorageService) importSet(ctx context.Context, key, value string) (int, bool, error) {
	var added []string
	err := s.kv.Mutate(ctx, key, func(current string, _ bool) (string, error) {
		var merged string
		merged, added = models.MergeIDSets(current, value)
		return merged, nil
	})
	if err != nil {
		return 0, false, err
	}
	if len(added) == 0 {
		return 0, false, nil
	}

	synced, err := s.isSynced(ctx, key)
	if err != nil || !synced {
		return len(added), false, err
	}
	for _, id := range added {
		if err = s.queue.Enqueue(ctx, models.Operation{Action: models.ActionAdd, Key: key, Value: id}); err != nil {
			return len(added), true, err
		}
	}
	return len(added), true, nil
}

func (s *clientStorageService) importNotes(ctx context.Context, value string) (int, bool, error) {
	imported := make(map[string]models.Note)
	if err := json.Unmarshal([]byte(value), &imported); err != nil {
		return 0, false, fmt.Errorf("decode imported notes: %w", err)
	}

	notes, err := loadNotes(ctx, s.kv, s.notesKey)
	if err != nil {
		return 0, false, err
	}

	changed := make([]string, 0, len(imported))
	for id, note := range imported {
		if note.Text == "" {
			continue
		}
		if existing, ok := notes[id]; ok && existing.Text == note.Text {
			continue
		}
		notes[id] = note
		changed = append(changed, id)
	}
	if len(changed) == 0 {
		return 0, false, nil
	}
	if err = storeNotes(ctx, s.kv, s.notesKey, notes); err != nil {
		return 0, false, err
	}

	st, err := s.settings.Get(ctx)
	if err != nil || !st.Configured() {
		return len(changed), false, err
	}
	slices.Sort(changed)
	for _, id := range changed {
		note := notes[id]
		if err = s.queue.EnqueueNote(ctx, models.NoteUpdate{EntityID: id, Text: note.Text, Timestamp: note.Date}); err != nil {
			return len(changed), true, err
		}
	}
	return len(changed), true, nil
}

func (s *clientStorageService) syncAfterImport(ctx context.Context) {
	_, err := s.syncService.SyncNow(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrConfig), errors.Is(err, ErrOffline), errors.Is(err, ErrRoundInFlight):
		s.logger.Debug().Err(err).Str("func", "clientStorageService.Import").Msg("sync after import skipped")
	default:
		s.logger.Warn().Err(err).Str("func", "clientStorageService.Import").Msg("sync after import failed, changes stay queued")
	}
}

func (s *clientStorageService) checkUserKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", ErrInvalidOperation)
	case isInternalKey(key):
		return fmt.Errorf("%w: %s", ErrInternalKey, key)
	case key == s.notesKey:
		return fmt.Errorf("%w: notes are edited per entity", ErrInvalidOperation)
	}
	return nil
}

func (s *clientStorageService) isSynced(ctx context.Context, key string) (bool, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return false, err
	}
	return st.Configured() && st.IsSelected(key), nil
}

func (s *clientStorageService) enqueueIfSynced(ctx context.Context, op models.Operation) error {
	synced, err := s.isSynced(ctx, op.Key)
	if err != nil || !synced {
		return err
	}
	return s.queue.Enqueue(ctx, op)
}

func (s *clientStorageService) enqueueNoteIfSynced(ctx context.Context, note models.NoteUpdate) error {
	st, err := s.settings.Get(ctx)
	if err != nil || !st.Configured() {
		return err
	}
	return s.queue.EnqueueNote(ctx, note)
}
