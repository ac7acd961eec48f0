// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/models"
)

type clientSettingsService struct {
	kv       store.KeyValueStore
	defaults models.SyncSettings

	mu          sync.Mutex
	subscribers map[int]chan models.SyncSettings
	nextID      int

	logger *logger.Logger
}

// NewClientSettingsService returns the settings owner backed by the SS_settings
// key of kv. defaults is returned until the first update is persisted.
func NewClientSettingsService(kv store.KeyValueStore, defaults models.SyncSettings, log *logger.Logger) ClientSettingsService {
	if defaults.IntervalSeconds < models.MinSyncIntervalSeconds {
		defaults.IntervalSeconds = models.DefaultSyncIntervalSeconds
	}

	return &clientSettingsService{
		kv:          kv,
		defaults:    defaults.Clone(),
		subscribers: make(map[int]chan models.SyncSettings),
		logger:      log,
	}
}

func (s *clientSettingsService) Get(ctx context.Context) (models.SyncSettings, error) {
	value, found, err := s.kv.Get(ctx, settingsKey)
	if err != nil {
		return models.SyncSettings{}, fmt.Errorf("read settings: %w", err)
	}
	return s.decode(value, found), nil
}

func (s *clientSettingsService) SetEndpoint(ctx context.Context, endpoint string) (models.SyncSettings, error) {
	endpoint = strings.TrimSpace(endpoint)
	return s.update(ctx, func(st *models.SyncSettings) error {
		st.Endpoint = endpoint
		return nil
	})
}

func (s *clientSettingsService) SetEnabled(ctx context.Context, enabled bool) (models.SyncSettings, error) {
	return s.update(ctx, func(st *models.SyncSettings) error {
		st.Enabled = enabled
		return nil
	})
}

func (s *clientSettingsService) SetInterval(ctx context.Context, seconds int) (models.SyncSettings, error) {
	if seconds < models.MinSyncIntervalSeconds {
		return models.SyncSettings{}, fmt.Errorf("%w: %ds, minimum is %ds", ErrIntervalTooShort, seconds, models.MinSyncIntervalSeconds)
	}
	return s.update(ctx, func(st *models.SyncSettings) error {
		st.IntervalSeconds = seconds
		return nil
	})
}

func (s *clientSettingsService) SetSelectedKeys(ctx context.Context, keys []string) (models.SyncSettings, error) {
	cleaned, err := normalizeKeys(keys)
	if err != nil {
		return models.SyncSettings{}, err
	}
	return s.update(ctx, func(st *models.SyncSettings) error {
		st.SelectedKeys = cleaned
		return nil
	})
}

func (s *clientSettingsService) RecordSuccess(ctx context.Context, at time.Time) (models.SyncSettings, error) {
	return s.update(ctx, func(st *models.SyncSettings) error {
		st.LastSync = at.UnixMilli()
		return nil
	})
}

func (s *clientSettingsService) MarkInitialized(ctx context.Context, keys []string, at time.Time) (models.SyncSettings, error) {
	cleaned, err := normalizeKeys(keys)
	if err != nil {
		return models.SyncSettings{}, err
	}
	return s.update(ctx, func(st *models.SyncSettings) error {
		st.Initialized = true
		st.Enabled = true
		st.SelectedKeys = cleaned
		st.LastSync = at.UnixMilli()
		return nil
	})
}

func (s *clientSettingsService) ClearInitialized(ctx context.Context) (models.SyncSettings, error) {
	return s.update(ctx, func(st *models.SyncSettings) error {
		st.Initialized = false
		st.Enabled = false
		return nil
	})
}

func (s *clientSettingsService) Reset(ctx context.Context) error {
	if err := s.kv.Remove(ctx, settingsKey); err != nil {
		return fmt.Errorf("remove settings: %w", err)
	}
	s.notify(s.defaults.Clone())
	return nil
}

func (s *clientSettingsService) Subscribe() (<-chan models.SyncSettings, func()) {
	ch := make(chan models.SyncSettings, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *clientSettingsService) update(ctx context.Context, fn func(st *models.SyncSettings) error) (models.SyncSettings, error) {
	var updated models.SyncSettings
	err := s.kv.Mutate(ctx, settingsKey, func(current string, found bool) (string, error) {
		st := s.decode(current, found)
		if err := fn(&st); err != nil {
			return "", err
		}

		data, err := json.Marshal(st)
		if err != nil {
			return "", fmt.Errorf("encode settings: %w", err)
		}
		updated = st
		return string(data), nil
	})
	if err != nil {
		return models.SyncSettings{}, fmt.Errorf("update settings: %w", err)
	}

	s.notify(updated.Clone())
	return updated, nil
}

// notify delivers st to every subscriber. A subscriber that has not consumed
// the previous value gets it replaced, so only the latest settings are seen.
func (s *clientSettingsService) notify(st models.SyncSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}

func (s *clientSettingsService) decode(value string, found bool) models.SyncSettings {
	st := s.defaults.Clone()
	if !found || value == "" {
		return st
	}

	if err := json.Unmarshal([]byte(value), &st); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSettingsService.decode").
			Msg("settings document is corrupt, using defaults")
		return s.defaults.Clone()
	}
	if st.IntervalSeconds < models.MinSyncIntervalSeconds {
		st.IntervalSeconds = models.MinSyncIntervalSeconds
	}
	return st.Clone()
}

// normalizeKeys trims, dedups and sorts keys. Internal keys are rejected.
func normalizeKeys(keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if isInternalKey(k) {
			return nil, fmt.Errorf("%w: %s", ErrInternalKey, k)
		}
		out = append(out, k)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
