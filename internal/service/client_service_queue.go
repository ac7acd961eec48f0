// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

// Internal KVS keys. They never leave the device.
const (
	settingsKey         = config.InternalKeyPrefix + "settings"
	pendingChangesKey   = config.InternalKeyPrefix + "pendingChanges"
	lastSyncedConfigKey = config.InternalKeyPrefix + "lastSyncedConfig"
)

func isInternalKey(key string) bool {
	return strings.HasPrefix(key, config.InternalKeyPrefix)
}

type clientQueueService struct {
	kv store.KeyValueStore

	logger *logger.Logger
}

// NewClientQueueService returns the Operation Log persisted under the
// SS_pendingChanges key of kv. Every update is a single KVS Mutate, so
// concurrent instances sharing the store never lose an entry.
func NewClientQueueService(kv store.KeyValueStore, log *logger.Logger) ClientQueueService {
	return &clientQueueService{
		kv:     kv,
		logger: log,
	}
}

func (q *clientQueueService) Enqueue(ctx context.Context, op models.Operation) error {
	if err := validateOperation(op); err != nil {
		return err
	}

	return q.update(ctx, func(p *models.PendingChanges) {
		p.Operations = coalesceOperation(p.Operations, op)
	})
}

func (q *clientQueueService) EnqueueNote(ctx context.Context, note models.NoteUpdate) error {
	if note.EntityID == "" {
		return fmt.Errorf("%w: empty entity id", ErrInvalidOperation)
	}

	return q.update(ctx, func(p *models.PendingChanges) {
		p.Notes = coalesceNote(p.Notes, note)
	})
}

func (q *clientQueueService) Drain(ctx context.Context) (models.PendingChanges, error) {
	value, found, err := q.kv.Get(ctx, pendingChangesKey)
	if err != nil {
		return models.PendingChanges{}, fmt.Errorf("read pending changes: %w", err)
	}
	return q.decode(value, found), nil
}

func (q *clientQueueService) Acknowledge(ctx context.Context, sent models.PendingChanges) error {
	if sent.Empty() {
		return nil
	}

	return q.update(ctx, func(p *models.PendingChanges) {
		for _, op := range sent.Operations {
			for i, existing := range p.Operations {
				if existing == op {
					p.Operations = append(p.Operations[:i], p.Operations[i+1:]...)
					break
				}
			}
		}
		for _, note := range sent.Notes {
			for i, existing := range p.Notes {
				if sameNoteUpdate(existing, note) {
					p.Notes = append(p.Notes[:i], p.Notes[i+1:]...)
					break
				}
			}
		}
	})
}

func (q *clientQueueService) Clear(ctx context.Context) error {
	return q.update(ctx, func(p *models.PendingChanges) {
		*p = models.PendingChanges{}
	})
}

func (q *clientQueueService) Pending(ctx context.Context) (int, error) {
	p, err := q.Drain(ctx)
	if err != nil {
		return 0, err
	}
	return p.Len(), nil
}

func (q *clientQueueService) update(ctx context.Context, fn func(p *models.PendingChanges)) error {
	err := q.kv.Mutate(ctx, pendingChangesKey, func(current string, found bool) (string, error) {
		pending := q.decode(current, found)
		fn(&pending)

		data, err := json.Marshal(pending.Clone())
		if err != nil {
			return "", fmt.Errorf("encode pending changes: %w", err)
		}
		return string(data), nil
	})
	if err != nil {
		return fmt.Errorf("update pending changes: %w", err)
	}
	return nil
}

// decode never fails: a corrupt document is logged and treated as empty so
// the queue stays usable.
func (q *clientQueueService) decode(value string, found bool) models.PendingChanges {
	var pending models.PendingChanges
	if !found || value == "" {
		return pending.Clone()
	}

	if err := json.Unmarshal([]byte(value), &pending); err != nil {
		q.logger.Warn().Err(err).Str("func", "clientQueueService.decode").
			Msg("pending changes document is corrupt, starting empty")
		return models.PendingChanges{}.Clone()
	}
	return pending.Clone()
}

func validateOperation(op models.Operation) error {
	switch {
	case op.Key == "":
		return fmt.Errorf("%w: empty key", ErrInvalidOperation)
	case isInternalKey(op.Key):
		return fmt.Errorf("%w: %s", ErrInternalKey, op.Key)
	case !op.Action.Valid():
		return fmt.Errorf("%w: unknown action %q", ErrInvalidOperation, op.Action)
	case op.Action != models.ActionSet && (op.Value == "" || strings.Contains(op.Value, models.IDSetSeparator)):
		return fmt.Errorf("%w: bad set member %q", ErrInvalidOperation, op.Value)
	}
	return nil
}

// coalesceOperation applies op to ops, scanning the most recent entries first.
//
// A Set replaces the whole value, so it drops every earlier entry on its key;
// an identical Set that is still the latest entry on the key is a duplicate.
// For Add and Remove a Set on the same key is a barrier: entries before it no
// longer describe the current value, so op is appended. Past no barrier:
//   - same pair and action: op is a duplicate and is dropped;
//   - same pair, opposite action: both entries cancel;
//   - otherwise op is appended.
func coalesceOperation(ops []models.Operation, op models.Operation) []models.Operation {
	if op.Action == models.ActionSet {
		for i := len(ops) - 1; i >= 0; i-- {
			if ops[i].Key != op.Key {
				continue
			}
			if ops[i].Action == models.ActionSet && ops[i].Value == op.Value {
				return ops
			}
			break
		}

		out := ops[:0]
		for _, existing := range ops {
			if existing.Key != op.Key {
				out = append(out, existing)
			}
		}
		return append(out, op)
	}

	for i := len(ops) - 1; i >= 0; i-- {
		existing := ops[i]
		if existing.Key != op.Key {
			continue
		}
		if existing.Action == models.ActionSet {
			break
		}
		if !existing.SamePair(op) {
			continue
		}
		if existing.Action == op.Action {
			return ops
		}
		return append(ops[:i], ops[i+1:]...)
	}

	return append(ops, op)
}

// coalesceNote keeps only the newest pending update per entity.
func coalesceNote(notes []models.NoteUpdate, note models.NoteUpdate) []models.NoteUpdate {
	for i := len(notes) - 1; i >= 0; i-- {
		if notes[i].EntityID == note.EntityID {
			notes = append(notes[:i], notes[i+1:]...)
			break
		}
	}
	return append(notes, note)
}

func sameNoteUpdate(a, b models.NoteUpdate) bool {
	if a.EntityID != b.EntityID || a.Text != b.Text {
		return false
	}
	if a.Timestamp == nil || b.Timestamp == nil {
		return a.Timestamp == b.Timestamp
	}
	return a.Timestamp.Equal(*b.Timestamp)
}
