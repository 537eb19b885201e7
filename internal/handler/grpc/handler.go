// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/go-greeter/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service for the overall server
// (empty service name) and for the application by its configured name.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	appName string
	health  *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING for
// both the empty service name and appName.
func NewHandler(appName string, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(appName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		appName: appName,
		health:  hs,
		logger:  logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the interceptors that must be installed on the
// server the handler is registered on.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.unaryAccessLog),
		grpc.ChainStreamInterceptor(h.streamAccessLog),
	}
}

// Shutdown flips every service to NOT_SERVING. Watchers are notified and any
// later status updates are ignored.
func (h *Handler) Shutdown() {
	h.logger.Debug().Str("app", h.appName).Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
