package handler

import (
	"github.com/MKhiriev/go-greeter/internal/config"
	"github.com/MKhiriev/go-greeter/internal/dispatcher"
	"github.com/MKhiriev/go-greeter/internal/handler/grpc"
	"github.com/MKhiriev/go-greeter/internal/handler/http"
	"github.com/MKhiriev/go-greeter/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the transport handlers around a single dispatcher. The
// gRPC handler is created only when a gRPC address is configured.
func NewHandlers(cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg == nil {
		return nil, errNoConfigProvided
	}

	d := dispatcher.New(dispatcher.Settings{
		AppName:    cfg.App.Name,
		CORSOrigin: cfg.CORS.Origin,
	})

	handlers := &Handlers{
		HTTP: http.NewHandler(d, logger),
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(cfg.App.Name, logger)
	}

	return handlers, nil
}
