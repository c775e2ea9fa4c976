// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variables are named after the
// `envPrefix` and `env` tags, e.g. STORAGE_DB_DATABASE_URI or
// WORKERS_PREFERENCES_REFRESH_INTERVAL. Unset variables leave the zero value
// so that lower-priority layers can supply it.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
