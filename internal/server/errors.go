// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no transport could
	// be built from the configuration.
	errNoServersAreCreated = errors.New("no servers are created")
	// errNoServersToRun is reported when RunServer is called on a server
	// without a transport.
	errNoServersToRun = errors.New("no servers to run")
)
