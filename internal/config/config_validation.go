// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/deploy-config/internal/render"
)

// validate checks the final merged [StructuredConfig] before it is used at
// startup. The output format is normalized to its canonical lower-case form.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	format, err := render.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}
	cfg.Output.Format = format

	if _, err = zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Source.EnvFile == "" && !cfg.Source.DisableDotenv {
		return ErrInvalidSourceConfigs
	}

	return nil
}
