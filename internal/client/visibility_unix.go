// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package client

import (
	"os"
	"syscall"
)

// SIGUSR1 hides the client and SIGUSR2 shows it again.
func visibilitySignals() []os.Signal {
	return []os.Signal{syscall.SIGUSR1, syscall.SIGUSR2}
}

func visibilityOf(sig os.Signal) (visible, ok bool) {
	switch sig {
	case syscall.SIGUSR1:
		return false, true
	case syscall.SIGUSR2:
		return true, true
	}
	return false, false
}
