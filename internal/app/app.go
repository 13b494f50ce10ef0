package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/deploy-config/internal/buildconfig"
	"github.com/MKhiriev/deploy-config/internal/config"
	"github.com/MKhiriev/deploy-config/internal/logger"
	"github.com/MKhiriev/deploy-config/internal/service"
)

// outputFileMode keeps rendered files private: they contain the signing key.
const outputFileMode = 0o600

// App is the deploy-config runtime.
type App struct {
	cfg      *config.StructuredConfig
	services *service.Services
	stdout   io.Writer

	logger *logger.Logger
}

// NewApp returns an [App]. stdout receives the configuration when no output
// path is configured.
func NewApp(cfg *config.StructuredConfig, services *service.Services, stdout io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil || services == nil || stdout == nil || logger == nil {
		return nil, ErrNilDependency
	}

	return &App{
		cfg:      cfg,
		services: services,
		stdout:   stdout,
		logger:   logger,
	}, nil
}

// Run builds the environment from osEnviron and the configured dotenv file,
// assembles the build configuration, and writes it out. Nothing is written
// when any step fails.
func (a *App) Run(ctx context.Context, osEnviron []string) error {
	dotenvPath := a.cfg.Source.DotenvPath()
	environ, err := buildconfig.LoadEnvironment(osEnviron, dotenvPath)
	if err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}
	a.logger.Debug().Str("dotenv", dotenvPath).Msg("environment loaded")

	buildCfg, err := a.services.BuildConfigService.Assemble(ctx, environ)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = a.services.BuildConfigService.Render(ctx, &buf, buildCfg, a.cfg.Output.Format); err != nil {
		return err
	}

	return a.write(buf.Bytes())
}

func (a *App) write(data []byte) error {
	path := a.cfg.Output.Path
	if path == "" {
		if _, err := a.stdout.Write(data); err != nil {
			return fmt.Errorf("error writing configuration to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("error writing configuration file: %w", err)
	}
	a.logger.Info().Str("path", path).Msg("configuration written")

	return nil
}
