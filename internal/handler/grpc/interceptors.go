package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-greeter/internal/logger"
	"github.com/MKhiriev/go-greeter/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const (
	// traceIDKey is the metadata counterpart of the HTTP X-Trace-ID header.
	traceIDKey = "x-trace-id"

	accessLogType = "access_log"
	transportName = "grpc"
)

func (h *Handler) unaryAccessLog(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	ctx, log := h.withTraceID(ctx)

	resp, err := handler(ctx, req)

	h.logAccess(ctx, log, info.FullMethod, start, err)
	return resp, err
}

func (h *Handler) streamAccessLog(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	ctx, log := h.withTraceID(ss.Context())

	err := handler(srv, &tracedStream{ServerStream: ss, ctx: ctx})

	h.logAccess(ctx, log, info.FullMethod, start, err)
	return err
}

// withTraceID mirrors the HTTP middleware: the caller's x-trace-id metadata is
// reused when present and short enough, otherwise a new UUID is generated.
func (h *Handler) withTraceID(ctx context.Context) (context.Context, *logger.Logger) {
	var incoming string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			incoming = values[0]
		}
	}
	traceID := utils.TraceID(incoming)

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return l.WithContext(ctx), l
}

func (h *Handler) logAccess(ctx context.Context, log *logger.Logger, method string, start time.Time, err error) {
	duration := time.Since(start)
	code := status.Code(err)

	log.Info().
		Str("type", accessLogType).
		Str("transport", transportName).
		Msgf("%q %s", method, code)

	remoteAddr := ""
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		remoteAddr = p.Addr.String()
	}

	log.Debug().
		Str("type", accessLogType).
		Str("transport", transportName).
		Str("method", method).
		Str("code", code.String()).
		Dur("duration", duration).
		Str("remote_addr", remoteAddr).
		Msg("request handled")
}

// tracedStream carries the trace-enriched context into stream handlers.
type tracedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *tracedStream) Context() context.Context {
	return s.ctx
}
