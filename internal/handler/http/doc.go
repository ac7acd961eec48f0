// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the reference remote store.
//
// The store speaks the sync wire protocol on a single endpoint: GET with
// ?action=ping answers the liveness probe and POST dispatches the JSON action
// request to the service layer. Request tracing, access logging and response
// compression are handled by middleware in this package.
package http
