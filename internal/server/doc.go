// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP server and the optional gRPC health
// server, including listener binding, signal handling and graceful shutdown
// of all enabled transports.
package server
