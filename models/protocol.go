// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Wire protocol actions understood by the remote store.
const (
	ActionPing              = "ping"
	ActionSync              = "sync"
	ActionInitialize        = "initialize"
	ActionUpdateEnabledKeys = "update_enabled_keys"
	ActionGetStorage        = "get_storage"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SyncRequest uploads the pending queue and asks for the full snapshot.
type SyncRequest struct {
	Action string         `json:"action"`
	Queue  PendingChanges `json:"queue"`
	// RequestedKeys optionally narrows the snapshot to the listed keys.
	RequestedKeys []string `json:"requestedKeys,omitempty"`
}

// InitializeRequest seeds the remote with the local snapshot of the selected
// keys. Force clears the remote unconditionally.
type InitializeRequest struct {
	Action       string            `json:"action"`
	InitData     map[string]string `json:"initData"`
	SelectedKeys []string          `json:"selectedKeys"`
	Force        bool              `json:"force,omitempty"`
}

// UpdateEnabledKeysRequest tells the remote which keys this device syncs.
type UpdateEnabledKeysRequest struct {
	Action      string   `json:"action"`
	EnabledKeys []string `json:"enabledKeys"`
}

// GetStorageRequest probes the remote without mutating it.
type GetStorageRequest struct {
	Action        string   `json:"action"`
	RequestedKeys []string `json:"requestedKeys"`
}

// ActionRequest is the union of every request body. The reference remote
// decodes incoming requests into it and dispatches on Action.
type ActionRequest struct {
	Action        string            `json:"action"`
	Queue         PendingChanges    `json:"queue"`
	InitData      map[string]string `json:"initData,omitempty"`
	SelectedKeys  []string          `json:"selectedKeys,omitempty"`
	Force         bool              `json:"force,omitempty"`
	EnabledKeys   []string          `json:"enabledKeys,omitempty"`
	RequestedKeys []string          `json:"requestedKeys,omitempty"`
}

// Envelope is the response body of every action. Remotes in the wild disagree
// on where the snapshot lives, so every known location is decoded and the
// adapter picks the populated one.
type Envelope struct {
	Status      string            `json:"status,omitempty"`
	Success     *bool             `json:"success,omitempty"`
	Data        *EnvelopeData     `json:"data,omitempty"`
	StorageData map[string]string `json:"storage_data,omitempty"`
	StatusData  map[string]string `json:"status_data,omitempty"`
	Notes       map[string]Note   `json:"notes,omitempty"`
	Initialized *bool             `json:"initialized,omitempty"`
	EnabledKeys []string          `json:"enabled_keys,omitempty"`
	Error       *EnvelopeError    `json:"error,omitempty"`
}

// EnvelopeData is the nested payload of a successful response.
type EnvelopeData struct {
	Success     *bool             `json:"success,omitempty"`
	StorageData map[string]string `json:"storage_data,omitempty"`
	StatusData  map[string]string `json:"status_data,omitempty"`
	Notes       map[string]Note   `json:"notes"`
	Initialized bool              `json:"initialized"`
	EnabledKeys []string          `json:"enabled_keys,omitempty"`
}

// EnvelopeError describes a well-formed failure response.
type EnvelopeError struct {
	Message string `json:"message"`
}

// Succeeded reports whether the remote accepted the request. A nested
// data.success flag, when sent, must agree with the top-level status.
func (e Envelope) Succeeded() bool {
	if e.Data != nil && e.Data.Success != nil && !*e.Data.Success {
		return false
	}
	if e.Status != "" {
		return e.Status == StatusSuccess
	}
	return e.Success != nil && *e.Success
}

// ErrorMessage returns the failure message or a generic one when the remote
// did not send any.
func (e Envelope) ErrorMessage() string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return "remote reported failure"
}
