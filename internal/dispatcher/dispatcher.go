// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatcher maps an inbound request to exactly one response.
//
// Dispatch is a pure function of the request and the immutable [Settings]:
// it holds no mutable state, never fails, and is safe for concurrent use.
// Transport adapters translate their native request into a [Request], call
// [Dispatcher.Dispatch] and serialize the returned [Response] once.
package dispatcher

import (
	"fmt"
	"net/http"
	"strings"
)

// Known paths. Matching is exact and case-sensitive; no trailing-slash
// normalization is applied.
const (
	RootPath        = "/"
	HealthCheckPath = "/healthcheck"
)

// Response header names and values set by the dispatcher.
const (
	HeaderAllowOrigin = "Access-Control-Allow-Origin"
	HeaderContentType = "Content-Type"
	HeaderAllow       = "Allow"

	ContentTypeText = "text/plain"
	AllowedMethods  = "GET, HEAD"
)

// Settings is the configuration consulted on every request.
type Settings struct {
	// AppName is echoed by the root endpoint.
	AppName string
	// CORSOrigin is sent as Access-Control-Allow-Origin on every response.
	CORSOrigin string
}

// Request is the transport-independent view of an inbound request.
type Request struct {
	Method string
	// Path is the raw request target as sent by the client, query string
	// and percent-encoding included.
	Path   string
	Header http.Header
}

// Response is the single response produced for a Request.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Dispatcher routes requests by exact path match.
type Dispatcher struct {
	settings Settings
}

// New returns a Dispatcher bound to settings.
func New(settings Settings) *Dispatcher {
	return &Dispatcher{settings: settings}
}

// Dispatch selects the behaviour for req and builds its response.
func (d *Dispatcher) Dispatch(req Request) Response {
	return Handle(req, d.settings)
}

// Handle builds the response for req under settings:
//
//	GET /             200 "{app_name}!\n"
//	GET /healthcheck  200 "OK\n"
//	GET anything else 404 with the path echoed back
//
// HEAD is dispatched like GET; the transport drops the body. Any other method
// gets 405 with an Allow header.
func Handle(req Request, settings Settings) Response {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return methodNotAllowed(req.Method, settings)
	}

	switch req.Path {
	case RootPath:
		return textResponse(http.StatusOK, settings.AppName+"!\n", settings)
	case HealthCheckPath:
		return textResponse(http.StatusOK, "OK\n", settings)
	default:
		return notFound(req.Path, settings)
	}
}

func notFound(path string, settings Settings) Response {
	var body strings.Builder
	body.WriteString("404 - Not Found\n")
	fmt.Fprintf(&body, "Path '%s' does not exist\n", path)
	fmt.Fprintf(&body, "Available endpoints: %s, %s\n", RootPath, HealthCheckPath)

	return textResponse(http.StatusNotFound, body.String(), settings)
}

func methodNotAllowed(method string, settings Settings) Response {
	var body strings.Builder
	body.WriteString("405 - Method Not Allowed\n")
	fmt.Fprintf(&body, "Method '%s' is not supported\n", method)

	resp := textResponse(http.StatusMethodNotAllowed, body.String(), settings)
	resp.Header.Set(HeaderAllow, AllowedMethods)
	return resp
}

func textResponse(status int, body string, settings Settings) Response {
	header := make(http.Header, 3)
	header.Set(HeaderContentType, ContentTypeText)
	header.Set(HeaderAllowOrigin, settings.CORSOrigin)

	return Response{
		Status: status,
		Header: header,
		Body:   []byte(body),
	}
}
