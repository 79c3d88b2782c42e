package service

import (
	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/crypto"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/MKhiriev/zephyr-centrum/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	codec TokenCodec,
	hasher crypto.PasswordHasher,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	validator := validators.NewUserUpdateValidator(storages.UserRepository)

	userService := NewUserValidationService(validator).
		Wrap(NewUserService(storages.UserRepository, hasher, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, codec, validator, cfg.Auth, logger),
		UserService:    userService,
		AppInfoService: NewAppInfoService(cfg.App, build, logger),
	}
}
