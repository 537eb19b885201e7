// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-greeter/internal/config"
	"github.com/MKhiriev/go-greeter/internal/dispatcher"
	"github.com/MKhiriev/go-greeter/internal/handler"
	"github.com/MKhiriev/go-greeter/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	cfg        config.Server
	logger     *logger.Logger

	// ready is closed once every listener is bound and signals are watched.
	ready        chan struct{}
	shutdownOnce sync.Once
}

// NewServer builds the HTTP server around handlers.HTTP and, when a gRPC
// address is configured, the gRPC health server. Nothing is bound until
// RunServer.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		cfg:        cfg,
		logger:     logger,
		ready:      make(chan struct{}),
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	errCh := make(chan error, 2)

	s.logger.Info().Msg("Launching HTTP server")
	go func() { errCh <- s.httpServer.serve() }()

	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.addr().String()).Msg("Launching GRPC server")
		go func() { errCh <- s.gRPCServer.serve() }()
	}

	s.logStartup()
	close(s.ready)

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down server...")
		s.Shutdown()
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-errCh:
		s.Shutdown()
		return err
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		s.httpServer.Shutdown()

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

// listen binds every listener up front so that a port conflict is reported
// before anything is served.
func (s *server) listen() error {
	if err := s.httpServer.listen(); err != nil {
		return err
	}

	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			s.httpServer.close()
			return err
		}
	}

	return nil
}

func (s *server) logStartup() {
	port := strconv.Itoa(s.cfg.Port)
	if _, p, err := net.SplitHostPort(s.httpServer.addr().String()); err == nil {
		port = p
	}

	baseURL := "http://" + net.JoinHostPort(s.cfg.DisplayHost(), port)

	s.logger.Info().Msgf("Server started at %s", baseURL)
	s.logger.Info().
		Strs("endpoints", []string{
			baseURL + dispatcher.RootPath,
			baseURL + dispatcher.HealthCheckPath,
		}).
		Msg("Available endpoints")
	s.logger.Info().Msg("Press Ctrl+C to stop the server")
}
