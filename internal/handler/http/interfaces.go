package http

import "github.com/MKhiriev/go-greeter/internal/dispatcher"

//go:generate mockgen -source=interfaces.go -destination=../../mock/dispatcher_mock.go -package=mock

// Dispatcher produces the response for a transport-independent request.
// [dispatcher.Dispatcher] is the production implementation.
type Dispatcher interface {
	// Dispatch must return exactly one response and must not fail.
	Dispatch(req dispatcher.Request) dispatcher.Response
}
