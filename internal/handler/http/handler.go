package http

import (
	"github.com/MKhiriev/go-greeter/internal/logger"
)

type Handler struct {
	dispatcher Dispatcher

	logger *logger.Logger
}

func NewHandler(dispatcher Dispatcher, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}
