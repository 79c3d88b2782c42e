package service

import (
	"context"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports the link-time build info. When no version was
// injected at build time the configured APP_VERSION is used instead.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	info := models.NewAppBuildInfo(build.Version, build.Date, build.Commit)
	if info.Version == models.NotAvailable && cfg.Version != "" {
		info.Version = cfg.Version
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
