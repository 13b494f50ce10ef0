// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/deploy-config/internal/render"
)

// EnvPrefix is prepended to every environment variable read into
// [StructuredConfig].
const EnvPrefix = "DEPLOY_CONFIG_"

// StructuredConfig holds the settings of the deploy-config tool itself. It
// controls where secrets come from and how the assembled build configuration
// is written; it never carries the secrets.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Source controls how the secrets environment is assembled.
	Source Source `envPrefix:"SOURCE_"`

	// Output controls the rendered build configuration.
	Output Output `envPrefix:"OUTPUT_"`

	// Log controls diagnostic logging on stderr.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON settings file. Its values
	// sit below environment variables and flags.
	// Populated via DEPLOY_CONFIG_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Source holds settings for the secrets environment.
type Source struct {
	// EnvFile is the dotenv file whose values fill variables missing from
	// the process environment.
	// Env: DEPLOY_CONFIG_SOURCE_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// DisableDotenv skips dotenv loading entirely.
	// Env: DEPLOY_CONFIG_SOURCE_DISABLE_DOTENV
	DisableDotenv bool `env:"DISABLE_DOTENV"`

	// Strict turns missing secrets into an error instead of a warning.
	// Env: DEPLOY_CONFIG_SOURCE_STRICT
	Strict bool `env:"STRICT"`
}

// Output holds settings for the rendered configuration.
type Output struct {
	// Format is one of "json", "yaml" or "js".
	// Env: DEPLOY_CONFIG_OUTPUT_FORMAT
	Format render.Format `env:"FORMAT"`

	// Path is the file the configuration is written to. Empty means stdout.
	// Env: DEPLOY_CONFIG_OUTPUT_PATH
	Path string `env:"PATH"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info", "warn").
	// Env: DEPLOY_CONFIG_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// DotenvPath returns the dotenv file to read, or "" when dotenv loading is
// disabled.
func (s Source) DotenvPath() string {
	if s.DisableDotenv {
		return ""
	}
	return s.EnvFile
}

// ZerologLevel returns the configured level, falling back to info when the
// level cannot be parsed.
func (l Log) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from the following sources (later sources override non-zero fields):
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables from environ, prefixed with [EnvPrefix]
//  3. Command-line flags from args (without the program name)
//
// Fields still empty afterwards take their defaults. flag.ErrHelp is
// returned wrapped when args request usage.
func GetStructuredConfig(args []string, environ map[string]string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(environ).
		withFlags(args).
		withJSON().
		build()
}
