// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/models"
)

// Field names understood by [ProtocolValidator].
const (
	FieldAction        = "action"
	FieldKey           = "key"
	FieldValue         = "value"
	FieldEntityID      = "entity_id"
	FieldOperations    = "operations"
	FieldNotes         = "notes"
	FieldInitData      = "init_data"
	FieldSelectedKeys  = "selected_keys"
	FieldEnabledKeys   = "enabled_keys"
	FieldRequestedKeys = "requested_keys"
)

type ProtocolValidator struct{}

func NewProtocolValidator() Validator {
	return &ProtocolValidator{}
}

func (v *ProtocolValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Operation:
		return v.validateOperation(value, fields...)
	case *models.Operation:
		return v.validateOperation(*value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value, fields...)

	case models.PendingChanges:
		return v.validateQueue(value, fields...)
	case *models.PendingChanges:
		return v.validateQueue(*value, fields...)

	case models.ActionRequest:
		return v.validateActionRequest(value, fields...)
	case *models.ActionRequest:
		return v.validateActionRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProtocolValidator) validateOperation(op models.Operation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAction, FieldKey, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			if !op.Action.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidAction, op.Action)
			}
		case FieldKey:
			if err := validateKey(op.Key); err != nil {
				return err
			}
		case FieldValue:
			if op.Action == models.ActionSet {
				continue
			}
			if op.Value == "" || strings.Contains(op.Value, models.IDSetSeparator) {
				return ErrInvalidSetValue
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProtocolValidator) validateNoteUpdate(note models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntityID}
	}

	for _, f := range fields {
		switch f {
		case FieldEntityID:
			if strings.TrimSpace(note.EntityID) == "" {
				return ErrEmptyEntityID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProtocolValidator) validateQueue(queue models.PendingChanges, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperations, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldOperations:
			for i, op := range queue.Operations {
				if err := v.validateOperation(op); err != nil {
					return fmt.Errorf("validation error at operation %d: %w", i, err)
				}
			}
		case FieldNotes:
			for i, note := range queue.Notes {
				if err := v.validateNoteUpdate(note); err != nil {
					return fmt.Errorf("validation error at note %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateActionRequest checks the fields relevant to req.Action unless
// fields are given explicitly.
func (v *ProtocolValidator) validateActionRequest(req models.ActionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAction}
		switch req.Action {
		case models.ActionSync:
			fields = append(fields, FieldOperations, FieldNotes, FieldRequestedKeys)
		case models.ActionInitialize:
			fields = append(fields, FieldSelectedKeys, FieldInitData)
		case models.ActionUpdateEnabledKeys:
			fields = append(fields, FieldEnabledKeys)
		case models.ActionGetStorage:
			fields = append(fields, FieldRequestedKeys)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			switch req.Action {
			case models.ActionPing, models.ActionSync, models.ActionInitialize,
				models.ActionUpdateEnabledKeys, models.ActionGetStorage:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
			}
		case FieldOperations:
			if err := v.validateQueue(req.Queue, FieldOperations); err != nil {
				return err
			}
		case FieldNotes:
			if err := v.validateQueue(req.Queue, FieldNotes); err != nil {
				return err
			}
		case FieldInitData:
			for key := range req.InitData {
				if err := validateKey(key); err != nil {
					return err
				}
				if !slices.Contains(req.SelectedKeys, key) {
					return fmt.Errorf("%w: %s", ErrUnselectedKey, key)
				}
			}
		case FieldSelectedKeys:
			if err := validateKeyList(req.SelectedKeys); err != nil {
				return err
			}
		case FieldEnabledKeys:
			if err := validateKeyList(req.EnabledKeys); err != nil {
				return err
			}
		case FieldRequestedKeys:
			if err := validateKeyList(req.RequestedKeys); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	if strings.HasPrefix(key, config.InternalKeyPrefix) {
		return fmt.Errorf("%w: %s", ErrInternalKey, key)
	}
	return nil
}

func validateKeyList(keys []string) error {
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if err := validateKey(key); err != nil {
			return err
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
