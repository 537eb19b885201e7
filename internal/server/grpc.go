package server

import (
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-greeter/internal/config"
	myGRPC "github.com/MKhiriev/go-greeter/internal/handler/grpc"
	"github.com/MKhiriev/go-greeter/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	address         string
	gRPCNetListener net.Listener

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		address:         cfg.GRPCAddress,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: grpc %s: %w", errListen, g.address, err)
	}
	g.gRPCNetListener = lis
	return nil
}

func (g *grpcServer) addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("%w: grpc: %w", errServe, err)
	}
	return nil
}

func (g *grpcServer) close() {
	if g.gRPCNetListener != nil {
		_ = g.gRPCNetListener.Close()
	}
}

// Shutdown reports NOT_SERVING, then stops gracefully; streams still open
// after the shutdown timeout are cut by Stop.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Msg("GRPC server graceful stop timed out, stopping")
		g.server.Stop()
	}
}
