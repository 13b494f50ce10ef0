// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environ using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types, all under [EnvPrefix].
//
// Returns a wrapped error if env.ParseWithOptions fails (e.g. a boolean
// variable holds an unparsable value).
func parseEnv(cfg any, environ map[string]string) error {
	if environ == nil {
		environ = map[string]string{}
	}

	err := env.ParseWithOptions(cfg, env.Options{
		Environment: environ,
		Prefix:      EnvPrefix,
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
