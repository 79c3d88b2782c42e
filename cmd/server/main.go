package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/crypto"
	"github.com/MKhiriev/zephyr-centrum/internal/handler"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/ratelimit"
	"github.com/MKhiriev/zephyr-centrum/internal/server"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/internal/token"
	"github.com/MKhiriev/zephyr-centrum/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("zephyr-centrum-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	keys, err := token.LoadKeyPairFromFiles(cfg.Auth.PublicKeyPath, cfg.Auth.PrivateKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading token keys")
	}

	hasher, err := crypto.NewPasswordHasher(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(store.NewStorages(db, log), token.NewCodec(keys), hasher, *cfg, build, log)

	gate, err := ratelimit.NewGate(cfg.RateLimit.Capacity, cfg.RateLimit.RefillTokens, cfg.RateLimit.RefillInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admission gate")
	}

	handlers, err := handler.NewHandlers(services, gate, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
