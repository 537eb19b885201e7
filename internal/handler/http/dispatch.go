package http

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-greeter/internal/dispatcher"
	"github.com/MKhiriev/go-greeter/internal/logger"
)

// dispatch adapts r into a [dispatcher.Request] and writes the returned
// response. Status and headers are written once, before the body.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	resp := h.dispatcher.Dispatch(dispatcher.Request{
		Method: r.Method,
		Path:   requestTarget(r),
		Header: r.Header,
	})

	header := w.Header()
	for key, values := range resp.Header {
		header[key] = slices.Clone(values)
	}
	header.Set("Content-Length", strconv.Itoa(len(resp.Body)))

	w.WriteHeader(resp.Status)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(resp.Body); err != nil {
		// the client went away; nothing left to send
		logger.FromRequest(r).Debug().Err(err).Msg("error writing response body")
	}
}

// requestTarget returns the request target exactly as the client sent it.
// Server-side requests always carry RequestURI; the fallback covers requests
// built in-process.
func requestTarget(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
