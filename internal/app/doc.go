// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the deploy-config runtime.
//
// It loads the secrets environment, assembles the build configuration, and
// writes it to stdout or to the configured output file.
package app
