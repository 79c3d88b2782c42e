package handler

import (
	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/handler/grpc"
	"github.com/MKhiriev/zephyr-centrum/internal/handler/http"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/ratelimit"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
)

// Handlers groups the transport handlers enabled by configuration. Both
// transports share the same admission gate.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, gate ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, gate, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(gate, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
