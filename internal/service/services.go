package service

import (
	"github.com/MKhiriev/deploy-config/internal/config"
	"github.com/MKhiriev/deploy-config/internal/logger"
	"github.com/MKhiriev/deploy-config/models"
)

// Services groups every service the CLI runtime uses.
type Services struct {
	BuildConfigService BuildConfigService
	AppInfoService     AppInfoService
}

// NewServices wires the services from the tool configuration. The build
// configuration service is wrapped with logging.
func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	buildConfig := NewBuildConfigService(cfg.Source, logger.GetChildLogger("build_config"))
	buildConfig = NewBuildConfigLoggingWrapper(logger.GetChildLogger("build_config")).Wrap(buildConfig)

	return &Services{
		BuildConfigService: buildConfig,
		AppInfoService:     NewAppInfoService(buildInfo, logger.GetChildLogger("app_info")),
	}
}
