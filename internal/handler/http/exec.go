// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-kv-sync/internal/app"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/service"
	"github.com/MKhiriev/go-kv-sync/internal/utils"
	"github.com/MKhiriev/go-kv-sync/models"
)

// maxRequestBody bounds the size of an action request.
const maxRequestBody = 10 << 20

// ping answers GET ?action=ping. A GET without an action is treated as a ping
// too, so a browser can check the endpoint by hand.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	if action != "" && action != models.ActionPing {
		h.writeError(w, r, ErrUnsupportedQueryAction)
		return
	}

	utils.WriteJSON(w, models.Envelope{Status: models.StatusSuccess}, http.StatusOK)
}

// exec decodes a POST action request and dispatches it to the remote store
// service. Every response is an Envelope.
func (h *Handler) exec(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ActionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.exec").Msg("Invalid JSON was passed")
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	var (
		state     models.RemoteState
		requested []string
		err       error
	)
	switch req.Action {
	case models.ActionPing:
		utils.WriteJSON(w, models.Envelope{Status: models.StatusSuccess}, http.StatusOK)
		return
	case models.ActionSync:
		state, err = h.services.RemoteStoreService.Sync(ctx, req.Queue)
		requested = req.RequestedKeys
	case models.ActionInitialize:
		state, err = h.services.RemoteStoreService.Initialize(ctx, models.InitializeRequest{
			InitData:     req.InitData,
			SelectedKeys: req.SelectedKeys,
			Force:        req.Force,
		})
	case models.ActionUpdateEnabledKeys:
		state, err = h.services.RemoteStoreService.UpdateEnabledKeys(ctx, req.EnabledKeys)
	case models.ActionGetStorage:
		state, err = h.services.RemoteStoreService.GetStorage(ctx)
		requested = req.RequestedKeys
	default:
		err = fmt.Errorf("%w: %q", service.ErrUnknownAction, req.Action)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.exec").Str("action", req.Action).Msg("action failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("func", "*Handler.exec").Str("action", req.Action).
		Int("operations", len(req.Queue.Operations)).
		Int("notes", len(req.Queue.Notes)).
		Msg("action served")

	utils.WriteJSON(w, successEnvelope(state, requested), http.StatusOK)
}

// successEnvelope renders state in the nested data shape. Notes are always
// present so that clients replace their local notes wholesale.
func successEnvelope(state models.RemoteState, requested []string) models.Envelope {
	notes := state.Notes
	if notes == nil {
		notes = map[string]models.Note{}
	}

	success := true
	return models.Envelope{
		Status: models.StatusSuccess,
		Data: &models.EnvelopeData{
			Success:     &success,
			StorageData: state.Snapshot(requested),
			Notes:       notes,
			Initialized: state.Initialized,
			EnabledKeys: state.EnabledKeys,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeError").Msg("request failed")
		message = app.MsgInternalServerError
	}

	envelope := models.Envelope{
		Status: models.StatusError,
		Error:  &models.EnvelopeError{Message: message},
	}
	if _, writeErr := utils.WriteJSON(w, envelope, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "*Handler.writeError").Msg("failed to write error response")
	}
}
