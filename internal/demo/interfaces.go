// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package demo

import "context"

// Runner defines the minimal lifecycle contract for runnable applications.
type Runner interface {
	// Run executes the application and blocks until it is finished.
	Run(ctx context.Context) error
}
