// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-kv-sync/internal/utils"
)

// getServerVersion writes the version as plain text, or the whole build info
// as JSON for ?format=json.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "json" {
		utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
		return
	}

	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
