// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

type remoteStoreService struct {
	repository store.RemoteRepository

	logger *logger.Logger
}

func NewRemoteStoreService(repository store.RemoteRepository, log *logger.Logger) RemoteStoreService {
	return &remoteStoreService{
		repository: repository,
		logger:     log,
	}
}

func (r *remoteStoreService) Sync(ctx context.Context, queue models.PendingChanges) (models.RemoteState, error) {
	var applied, ignored int

	state, err := r.repository.Update(ctx, func(st *models.RemoteState) error {
		applied, ignored = 0, 0

		for _, op := range queue.Operations {
			if !st.IsEnabled(op.Key) {
				ignored++
				continue
			}
			applyOperation(st, op)
			applied++
		}

		for _, note := range queue.Notes {
			applyNoteUpdate(st, note)
		}
		return nil
	})
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("apply sync queue: %w", err)
	}

	r.logger.Debug().Str("func", "remoteStoreService.Sync").
		Int("applied", applied).
		Int("ignored", ignored).
		Int("notes", len(queue.Notes)).
		Msg("sync queue applied")
	return state, nil
}

func (r *remoteStoreService) Initialize(ctx context.Context, req models.InitializeRequest) (models.RemoteState, error) {
	state, err := r.repository.Update(ctx, func(st *models.RemoteState) error {
		if st.Initialized && len(st.EnabledKeys) > 0 && !req.Force {
			return ErrAlreadyInitialized
		}

		*st = models.NewRemoteState()
		if req.Force && len(req.InitData) == 0 && len(req.SelectedKeys) == 0 {
			return nil
		}

		st.EnabledKeys = sortedUnique(req.SelectedKeys)
		for _, key := range st.EnabledKeys {
			if v, ok := req.InitData[key]; ok {
				st.Values[key] = v
			}
		}
		st.Initialized = true
		return nil
	})
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("initialize remote store: %w", err)
	}

	r.logger.Info().Str("func", "remoteStoreService.Initialize").
		Bool("force", req.Force).
		Strs("enabled_keys", state.EnabledKeys).
		Msg("remote store initialized")
	return state, nil
}

func (r *remoteStoreService) UpdateEnabledKeys(ctx context.Context, keys []string) (models.RemoteState, error) {
	state, err := r.repository.Update(ctx, func(st *models.RemoteState) error {
		st.EnabledKeys = sortedUnique(keys)
		return nil
	})
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("update enabled keys: %w", err)
	}
	return state, nil
}

func (r *remoteStoreService) GetStorage(ctx context.Context) (models.RemoteState, error) {
	state, err := r.repository.View(ctx)
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("read remote store: %w", err)
	}
	return state, nil
}

// applyOperation mutates st. Add and Remove are idempotent on the ID set.
func applyOperation(st *models.RemoteState, op models.Operation) {
	switch op.Action {
	case models.ActionAdd:
		st.Values[op.Key], _ = models.AddToIDSet(st.Values[op.Key], op.Value)
	case models.ActionRemove:
		st.Values[op.Key], _ = models.RemoveFromIDSet(st.Values[op.Key], op.Value)
	case models.ActionSet:
		st.Values[op.Key] = op.Value
	}
}

// applyNoteUpdate deletes the note on empty text. Otherwise the note is
// stored unless the stored one is strictly newer.
func applyNoteUpdate(st *models.RemoteState, note models.NoteUpdate) {
	if note.Deleted() {
		delete(st.Notes, note.EntityID)
		return
	}

	if existing, ok := st.Notes[note.EntityID]; ok &&
		existing.Date != nil && note.Timestamp != nil && note.Timestamp.Before(*existing.Date) {
		return
	}
	st.Notes[note.EntityID] = models.Note{Text: note.Text, Date: note.Timestamp}
}

func sortedUnique(keys []string) []string {
	out := slices.Clone(keys)
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
