// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides client-side access to a running greeter server.
//
// The primary abstraction is [HealthChecker], which the probe command uses to
// turn the server's /healthcheck endpoint into a process exit code. The
// package ships an HTTP implementation ([NewHealthChecker]) built on resty.
package adapter

import "context"

// HealthChecker reports whether a greeter server is alive.
type HealthChecker interface {
	// Check performs a single liveness request. It returns nil only when the
	// server answers 200 with the "OK\n" body, and an error wrapping
	// [ErrUnhealthy] or [ErrUnreachable] otherwise.
	Check(ctx context.Context) error
}
