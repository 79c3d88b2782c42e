package http

import (
	"time"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/ratelimit"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/internal/utils"
)

type Handler struct {
	services *service.Services
	gate     ratelimit.Limiter
	traceIDs *utils.UUIDGenerator

	insecureCookie bool
	requestTimeout time.Duration
	now            func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, gate ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		gate:           gate,
		traceIDs:       utils.NewUUIDGenerator(),
		insecureCookie: cfg.Cookie.Insecure,
		requestTimeout: cfg.Server.RequestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
