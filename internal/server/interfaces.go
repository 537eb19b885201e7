package server

import "context"

// Server defines the lifecycle contract for the transports managed by this
// package.
//
// Implementations bind their listeners and block in [RunServer] until ctx is
// cancelled, an interrupt signal arrives or a transport fails.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns nil after an interrupt-driven shutdown and the transport
	// error otherwise, including bind failures.
	RunServer(ctx context.Context) error

	// Shutdown stops every transport and frees associated resources. It is
	// safe to call more than once.
	Shutdown()
}
