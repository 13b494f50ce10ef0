package service

import (
	"context"
	"io"

	"github.com/MKhiriev/deploy-config/internal/logger"
	"github.com/MKhiriev/deploy-config/internal/render"
	"github.com/MKhiriev/deploy-config/models"
)

type buildConfigLoggingWrapper struct {
	logger *logger.Logger
}

// NewBuildConfigLoggingWrapper returns a wrapper that logs every call of the
// wrapped [BuildConfigService]. Secret values are never logged, only whether
// they are present.
func NewBuildConfigLoggingWrapper(logger *logger.Logger) BuildConfigServiceWrapper {
	return &buildConfigLoggingWrapper{logger: logger}
}

func (w *buildConfigLoggingWrapper) Wrap(next BuildConfigService) BuildConfigService {
	return &buildConfigLoggingService{
		next:   next,
		logger: w.logger,
	}
}

type buildConfigLoggingService struct {
	next   BuildConfigService
	logger *logger.Logger
}

func (s *buildConfigLoggingService) Assemble(ctx context.Context, environ map[string]string) (models.BuildConfiguration, error) {
	cfg, err := s.next.Assemble(ctx, environ)
	if err != nil {
		s.logger.Error().Err(err).Msg("build configuration assembly failed")
		return cfg, err
	}

	network := cfg.Network()
	s.logger.Info().
		Str("compiler_version", cfg.CompilerVersion()).
		Str("network", network.Name).
		Bool("endpoint_set", network.EndpointURL != "").
		Int("signing_keys", len(network.SigningKeys)).
		Bool("verification_key_set", cfg.Verification().APIKey != "").
		Msg("build configuration assembled")

	return cfg, nil
}

func (s *buildConfigLoggingService) Render(ctx context.Context, w io.Writer, cfg models.BuildConfiguration, format render.Format) error {
	if err := s.next.Render(ctx, w, cfg, format); err != nil {
		s.logger.Error().Err(err).Str("format", string(format)).Msg("build configuration rendering failed")
		return err
	}

	s.logger.Debug().Str("format", string(format)).Msg("build configuration rendered")
	return nil
}
