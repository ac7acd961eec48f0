// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the reference remote writes into
// error envelopes.
//
// Keeping them in one place keeps the wording identical between the handlers,
// the middleware and the server timeout response.
package app

const (
	// MsgInternalServerError replaces the message of every failure the client
	// cannot resolve, so storage details never leave the server.
	MsgInternalServerError = "internal server error"

	// MsgInvalidGzipBody is returned when a request declares gzip encoding but
	// its body cannot be decompressed.
	MsgInvalidGzipBody = "invalid gzip body"

	// MsgRequestTimedOut is returned when the request exceeded the configured
	// server timeout.
	MsgRequestTimedOut = "request timed out"

	// MsgMethodNotSupported is a format string taking the method and the path.
	MsgMethodNotSupported = "%s is not supported on %s"
)
