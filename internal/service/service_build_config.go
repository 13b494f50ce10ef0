package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/deploy-config/internal/buildconfig"
	"github.com/MKhiriev/deploy-config/internal/config"
	"github.com/MKhiriev/deploy-config/internal/logger"
	"github.com/MKhiriev/deploy-config/internal/render"
	"github.com/MKhiriev/deploy-config/models"
)

type buildConfigService struct {
	strict bool

	logger *logger.Logger
}

// NewBuildConfigService returns a [BuildConfigService]. With cfg.Strict set a
// missing variable fails assembly; otherwise each one is logged as a warning
// and replaced by the empty placeholder.
func NewBuildConfigService(cfg config.Source, logger *logger.Logger) BuildConfigService {
	return &buildConfigService{
		strict: cfg.Strict,
		logger: logger,
	}
}

func (s *buildConfigService) Assemble(ctx context.Context, environ map[string]string) (models.BuildConfiguration, error) {
	if err := s.checkMissing(environ); err != nil {
		return models.BuildConfiguration{}, err
	}

	cfg, err := buildconfig.Assemble(environ)
	if err != nil {
		return models.BuildConfiguration{}, fmt.Errorf("error assembling build configuration: %w", err)
	}

	return cfg, nil
}

func (s *buildConfigService) Render(ctx context.Context, w io.Writer, cfg models.BuildConfiguration, format render.Format) error {
	if err := render.Encode(w, cfg, format); err != nil {
		return fmt.Errorf("error rendering build configuration: %w", err)
	}

	return nil
}

func (s *buildConfigService) checkMissing(environ map[string]string) error {
	err := buildconfig.Validate(environ)
	if err == nil {
		return nil
	}

	var missingErr *buildconfig.MissingVariablesError
	if !errors.As(err, &missingErr) {
		return err
	}

	if s.strict {
		return fmt.Errorf("%w: %w", ErrStrictValidationFailed, err)
	}

	for _, name := range missingErr.Names {
		s.logger.Warn().
			Str("variable", name).
			Msg("required environment variable is not set, using empty placeholder")
	}

	return nil
}
