// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-kv-sync/models"
)

// memoryRemoteRepository keeps the remote state in process memory. It backs
// the reference remote when no database is configured.
type memoryRemoteRepository struct {
	mu    sync.Mutex
	state models.RemoteState
}

// NewMemoryRemoteRepository constructs an empty in-memory [RemoteRepository].
func NewMemoryRemoteRepository() RemoteRepository {
	return &memoryRemoteRepository{state: models.NewRemoteState()}
}

func (m *memoryRemoteRepository) View(ctx context.Context) (models.RemoteState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.Clone(), nil
}

func (m *memoryRemoteRepository) Update(ctx context.Context, fn func(state *models.RemoteState) error) (models.RemoteState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state.Clone()
	if err := fn(&next); err != nil {
		return models.RemoteState{}, err
	}
	m.state = next

	return next.Clone(), nil
}
