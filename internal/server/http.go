package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-greeter/internal/config"
	"github.com/MKhiriev/go-greeter/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (h *httpServer) listen() error {
	lis, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: http %s: %w", errListen, h.server.Addr, err)
	}
	h.listener = lis
	return nil
}

func (h *httpServer) addr() net.Addr {
	return h.listener.Addr()
}

// serve blocks until the server is shut down; that case is not an error.
func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: http: %w", errServe, err)
	}
	return nil
}

// close releases a listener that was bound but never served.
func (h *httpServer) close() {
	if h.listener != nil {
		_ = h.listener.Close()
	}
}

// Shutdown stops accepting connections and waits for in-flight requests up
// to the shutdown timeout; whatever is left is closed forcibly.
func (h *httpServer) Shutdown() {
	h.logger.Info().Msg("HTTP server Shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("HTTP server graceful shutdown failed, closing connections")
		_ = h.server.Close()
	}
}
