package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/deploy-config/internal/app"
	"github.com/MKhiriev/deploy-config/internal/buildconfig"
	"github.com/MKhiriev/deploy-config/internal/config"
	"github.com/MKhiriev/deploy-config/internal/logger"
	"github.com/MKhiriev/deploy-config/internal/service"
	"github.com/MKhiriev/deploy-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	processEnv := os.Environ()

	cfg, err := config.GetStructuredConfig(os.Args[1:], buildconfig.EnvironFromList(processEnv))
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.NewLogger("deploy-config", zerolog.InfoLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("deploy-config", cfg.Log.ZerologLevel())

	services := service.NewServices(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	printBuildInfo(services.AppInfoService.GetBuildInfo(context.Background()))

	runner, err := app.NewApp(cfg, services, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = runner.Run(context.Background(), processEnv); err != nil {
		log.Fatal().Err(err).Msg("deploy-config run error")
	}
}

// printBuildInfo writes to stderr: stdout may carry the configuration.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}
