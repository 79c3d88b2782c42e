// Package grpc implements the gRPC transport of zephyr-centrum.
//
// The transport serves the standard grpc.health.v1.Health service. Every
// call, unary or streaming, passes the same admission gate as HTTP requests.
package grpc

import (
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/ratelimit"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall
// ("") server status.
const ServiceName = "zephyr.centrum"

// Handler is the root gRPC transport handler.
//
// It owns the health server and the interceptors. A handler instance is
// created once at startup and shared by the gRPC server.
type Handler struct {
	gate     ratelimit.Limiter
	health   *health.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler constructs a [Handler] guarded by gate.
func NewHandler(gate ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		gate:     gate,
		health:   health.NewServer(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// ServerOptions returns the interceptor chain every gRPC server must use.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.unaryLogging, h.unaryAdmission),
		grpc.ChainStreamInterceptor(h.streamLogging, h.streamAdmission),
	}
}

// Register attaches the services to s and marks them as serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING for every service. Later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
