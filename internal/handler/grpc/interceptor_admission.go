package grpc

import (
	"context"
	"strconv"

	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/ratelimit"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RetryAfterMetadataKey carries the retry hint of a throttled call.
const RetryAfterMetadataKey = "x-rate-limit-retry-after-seconds"

func (h *Handler) unaryAdmission(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if probe := h.gate.TryConsume(1); !probe.Allowed {
		return nil, h.refuse(ctx, info.FullMethod, probe, func(md metadata.MD) error {
			return grpc.SetHeader(ctx, md)
		})
	}
	return handler(ctx, req)
}

func (h *Handler) streamAdmission(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if probe := h.gate.TryConsume(1); !probe.Allowed {
		return h.refuse(ss.Context(), info.FullMethod, probe, ss.SetHeader)
	}
	return handler(srv, ss)
}

// refuse builds the ResourceExhausted status and attaches the retry hint
// through setHeader. A failure to set the header does not change the answer.
func (h *Handler) refuse(ctx context.Context, method string, probe ratelimit.Probe, setHeader func(metadata.MD) error) error {
	retryAfter := strconv.FormatInt(probe.RetryAfterSeconds(), 10)

	log := logger.FromContext(ctx)
	if err := setHeader(metadata.Pairs(RetryAfterMetadataKey, retryAfter)); err != nil {
		log.Debug().Err(err).Msg("retry hint header not set")
	}
	log.Warn().Str("method", method).Str("retry_after_seconds", retryAfter).Msg("call throttled")

	return status.Errorf(codes.ResourceExhausted, "too many requests, retry after %s seconds", retryAfter)
}
