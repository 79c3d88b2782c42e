package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/zephyr-centrum/internal/adapter"
	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("zephyr-centrum-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPAPIClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &commandLine{
		api:      api,
		sessions: newSessionFile(defaultSessionPath()),
		build:    models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		out:      os.Stdout,
	}

	if err = cli.run(ctx, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}
