// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-kv-sync/internal/app"
	"github.com/MKhiriev/go-kv-sync/internal/utils"
	"github.com/MKhiriev/go-kv-sync/models"
)

// CheckHTTPMethod is registered as the MethodNotAllowed handler of router.
// An unsupported method on a known path is answered with 404 and an error
// envelope instead of chi's bare 405, so protocol clients always get a body
// they can decode.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSON(w, models.Envelope{
			Status: models.StatusError,
			Error:  &models.EnvelopeError{Message: fmt.Sprintf(app.MsgMethodNotSupported, r.Method, r.URL.Path)},
		}, http.StatusNotFound)
	}
}
