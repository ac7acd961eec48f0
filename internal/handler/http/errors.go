// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRequestBody is returned when a POST body is not a JSON action
	// request.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrUnsupportedQueryAction is returned for GET requests whose action
	// query parameter is not "ping".
	ErrUnsupportedQueryAction = errors.New("only the ping action is served over GET")
)
