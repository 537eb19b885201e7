// Package http implements the HTTP transport layer of the application.
//
// It wires a chi router whose every route ends in the request dispatcher,
// and the middleware around it: panic recovery, request tracing and access
// logging. The package owns serialization only; routing decisions and
// response contents belong to the dispatcher package.
package http
