// Package config provides configuration loading, merging, and validation for
// the deploy-config tool itself.
//
// Configuration is assembled from the following sources (later sources
// override earlier non-zero fields):
//  1. Optional JSON settings file (-config or DEPLOY_CONFIG_CONFIG)
//  2. Environment variables prefixed with DEPLOY_CONFIG_
//  3. Command-line flags
//
// Defaults fill whatever is still empty. The main entry point is
// [GetStructuredConfig].
package config
