// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvNamespace is an optional prefix for every environment variable. A
// namespaced variable (KVSYNC_APP_LOG_LEVEL) wins over the bare one
// (APP_LOG_LEVEL), so one shell can host the client and the server.
const EnvNamespace = "KVSYNC_"

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags of [StructuredConfig]. Bare names are read first and the
// [EnvNamespace] pass overrides them. Unset variables leave fields untouched.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvNamespace}); err != nil {
		return fmt.Errorf("error getting namespaced env configs: %w", err)
	}

	return nil
}
