// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "context"

// Runner defines the lifecycle contract of the runtime.
type Runner interface {
	// Run performs a single assembly from osEnviron and returns when the
	// configuration has been written.
	Run(ctx context.Context, osEnviron []string) error
}
