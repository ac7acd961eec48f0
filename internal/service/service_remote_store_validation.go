// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kv-sync/internal/validators"
	"github.com/MKhiriev/go-kv-sync/models"
)

type RemoteStoreValidationService struct {
	inner     RemoteStoreService
	validator validators.Validator
}

func NewRemoteStoreValidationService() RemoteStoreServiceWrapper {
	return &RemoteStoreValidationService{
		validator: validators.NewProtocolValidator(),
	}
}

func (v *RemoteStoreValidationService) Wrap(inner RemoteStoreService) RemoteStoreService {
	v.inner = inner
	return v
}

func (v *RemoteStoreValidationService) Sync(ctx context.Context, queue models.PendingChanges) (models.RemoteState, error) {
	if err := v.validator.Validate(ctx, queue); err != nil {
		return models.RemoteState{}, fmt.Errorf("error during sync queue validation: %w", err)
	}
	return v.inner.Sync(ctx, queue)
}

func (v *RemoteStoreValidationService) Initialize(ctx context.Context, req models.InitializeRequest) (models.RemoteState, error) {
	asAction := models.ActionRequest{
		Action:       models.ActionInitialize,
		InitData:     req.InitData,
		SelectedKeys: req.SelectedKeys,
		Force:        req.Force,
	}
	if err := v.validator.Validate(ctx, asAction); err != nil {
		return models.RemoteState{}, fmt.Errorf("error during initialize request validation: %w", err)
	}
	return v.inner.Initialize(ctx, req)
}

func (v *RemoteStoreValidationService) UpdateEnabledKeys(ctx context.Context, keys []string) (models.RemoteState, error) {
	asAction := models.ActionRequest{Action: models.ActionUpdateEnabledKeys, EnabledKeys: keys}
	if err := v.validator.Validate(ctx, asAction, validators.FieldEnabledKeys); err != nil {
		return models.RemoteState{}, fmt.Errorf("error during enabled keys validation: %w", err)
	}
	return v.inner.UpdateEnabledKeys(ctx, keys)
}

func (v *RemoteStoreValidationService) GetStorage(ctx context.Context) (models.RemoteState, error) {
	return v.inner.GetStorage(ctx)
}
