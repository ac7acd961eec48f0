// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/internal/store"
	"github.com/MKhiriev/go-kv-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:     http.StatusBadRequest,
	ErrUnsupportedQueryAction: http.StatusBadRequest,

	service.ErrUnknownAction:         http.StatusBadRequest,
	service.ErrAlreadyInitialized:    http.StatusConflict,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	validators.ErrUnsupportedType: http.StatusBadRequest,
	validators.ErrUnknownField:    http.StatusBadRequest,
	validators.ErrInvalidAction:   http.StatusBadRequest,
	validators.ErrEmptyKey:        http.StatusBadRequest,
	validators.ErrInternalKey:     http.StatusBadRequest,
	validators.ErrInvalidSetValue: http.StatusBadRequest,
	validators.ErrEmptyEntityID:   http.StatusBadRequest,
	validators.ErrDuplicateKey:    http.StatusBadRequest,
	validators.ErrUnselectedKey:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
