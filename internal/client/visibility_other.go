// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package client

import "os"

func visibilitySignals() []os.Signal {
	return nil
}

func visibilityOf(os.Signal) (visible, ok bool) {
	return false, false
}
