// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the local store, the Sync Client and the client
// services into a process.
//
// [NewRuntime] builds the dependencies shared by every CLI command.
// [App] runs the background part: the scheduler, the connectivity monitor and
// the status log, until the process receives a stop signal.
package client
