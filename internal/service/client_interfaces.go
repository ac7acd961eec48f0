// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-kv-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientQueueService is the persisted Operation Log. Every entry passes the
// Coalescer before it is stored, so the log holds only distinct, currently
// effective mutations.
type ClientQueueService interface {
	// Enqueue coalesces op into the log. Returns ErrInvalidOperation for an
	// empty key, an unknown action or an internal key.
	Enqueue(ctx context.Context, op models.Operation) error

	// EnqueueNote replaces any pending update for the same entity.
	EnqueueNote(ctx context.Context, note models.NoteUpdate) error

	// Drain returns the current log without clearing it.
	Drain(ctx context.Context) (models.PendingChanges, error)

	// Acknowledge removes the entries of sent that are still queued. Entries
	// enqueued after sent was drained survive.
	Acknowledge(ctx context.Context, sent models.PendingChanges) error

	// Clear empties the log atomically.
	Clear(ctx context.Context) error

	// Pending returns the number of queued entries.
	Pending(ctx context.Context) (int, error)
}

// ClientSettingsService owns the persisted SyncSettings. Each setter persists
// the new value and then notifies subscribers.
type ClientSettingsService interface {
	Get(ctx context.Context) (models.SyncSettings, error)

	SetEndpoint(ctx context.Context, endpoint string) (models.SyncSettings, error)
	SetEnabled(ctx context.Context, enabled bool) (models.SyncSettings, error)
	// SetInterval returns ErrIntervalTooShort below the minimum bound.
	SetInterval(ctx context.Context, seconds int) (models.SyncSettings, error)
	SetSelectedKeys(ctx context.Context, keys []string) (models.SyncSettings, error)

	// RecordSuccess stores at as the last-success timestamp.
	RecordSuccess(ctx context.Context, at time.Time) (models.SyncSettings, error)
	// MarkInitialized flags the device as bootstrapped, enables sync and
	// stores the enabled keys and the last-success timestamp.
	MarkInitialized(ctx context.Context, keys []string, at time.Time) (models.SyncSettings, error)
	// ClearInitialized flags the device as not bootstrapped and disables sync.
	ClearInitialized(ctx context.Context) (models.SyncSettings, error)

	// Reset removes the persisted settings.
	Reset(ctx context.Context) error

	// Subscribe returns a channel receiving every persisted change and a
	// function that cancels the subscription.
	Subscribe() (<-chan models.SyncSettings, func())
}

// ClientStatusService is the observable Sync State.
type ClientStatusService interface {
	Current() models.SyncState

	// StartRound moves to Syncing. From Success or Error the machine settles
	// to Normal first.
	StartRound() error
	Succeed() error
	Fail(cause error) error
	// Settle returns from Success or Error to Normal.
	Settle() error
	Disconnect() error
	Reconnect() error

	Online() bool

	// SetCountdown stores the countdown shown until the next round.
	SetCountdown(d time.Duration)

	// Subscribe returns a channel receiving every transition and a function
	// that cancels the subscription.
	Subscribe() (<-chan models.StatusChange, func())

	// Snapshot collects everything a status widget shows.
	Snapshot(ctx context.Context) models.StatusSnapshot
}

// ClientSyncService is the Reconciler.
type ClientSyncService interface {
	// SyncNow runs one round. It returns ErrRoundInFlight while another round
	// of this instance runs, an ErrConfig kind when the device is not ready and
	// ErrOffline while disconnected. None of those touch the log or the state.
	SyncNow(ctx context.Context) (models.RoundResult, error)
}

// ClientInitService bootstraps the device against the remote and manages the
// remote-facing part of the settings.
type ClientInitService interface {
	// Initialize adopts a populated remote or seeds an empty one with the
	// local snapshot of the selected keys.
	Initialize(ctx context.Context) (models.RemoteSnapshot, error)

	// TestConnection pings url and stores it as the endpoint on success.
	TestConnection(ctx context.Context, url string) error

	// SelectKeys stores the selected keys. On an initialized device the newly
	// enabled keys are queued with their local value and the remote is told
	// about the new list.
	SelectKeys(ctx context.Context, keys []string) (models.SyncSettings, error)

	// ClearRemote wipes the remote unconditionally.
	ClearRemote(ctx context.Context) error

	// Reset removes the local settings and pending changes.
	Reset(ctx context.Context) error
}

// ClientSyncJob is the Scheduler.
type ClientSyncJob interface {
	// Start arms the timers from the persisted last-success timestamp and
	// re-arms them whenever the settings change. Any running job is stopped
	// first.
	Start(ctx context.Context)

	// Stop clears every timer and blocks until the job has exited.
	Stop()

	SetVisible(visible bool)
	SetOnline(online bool)

	// TimeUntilNextSync returns the displayed countdown.
	TimeUntilNextSync() time.Duration
}

// ClientStorageService is the only path local actions use to mutate the KVS.
// Writes to synced keys of an initialized device are queued for upload.
type ClientStorageService interface {
	SetValue(ctx context.Context, key, value string) error
	AddToSet(ctx context.Context, key, id string) error
	RemoveFromSet(ctx context.Context, key, id string) error

	SetNote(ctx context.Context, entityID, text string) error
	DeleteNote(ctx context.Context, entityID string) error
	Notes(ctx context.Context) (map[string]models.Note, error)

	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)

	// Import merges entries into the KVS and returns the number of new
	// members per key. Synced changes trigger an immediate round.
	Import(ctx context.Context, entries map[string]string) (map[string]int, error)
	// Export returns the values of keys, or of every non-internal key when
	// keys is empty.
	Export(ctx context.Context, keys []string) (map[string]string, error)
}
