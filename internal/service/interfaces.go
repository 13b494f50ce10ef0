package service

import (
	"context"
	"io"

	"github.com/MKhiriev/deploy-config/internal/render"
	"github.com/MKhiriev/deploy-config/models"
)

// BuildConfigService assembles and renders the toolchain build configuration.
type BuildConfigService interface {
	// Assemble builds the configuration from environ. Missing variables are
	// reported according to the service's strictness.
	Assemble(ctx context.Context, environ map[string]string) (models.BuildConfiguration, error)

	// Render writes cfg to w in the given format.
	Render(ctx context.Context, w io.Writer, cfg models.BuildConfiguration, format render.Format) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// BuildConfigServiceWrapper defines middleware composition for
// BuildConfigService. Implementations wrap an existing BuildConfigService to
// add behavior such as logging.
type BuildConfigServiceWrapper interface {
	Wrap(BuildConfigService) BuildConfigService
}
