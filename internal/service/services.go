package service

import (
	"github.com/MKhiriev/dashboard-server/internal/adapter"
	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/metrics"
	"github.com/MKhiriev/dashboard-server/internal/pages"
	"github.com/MKhiriev/dashboard-server/models"
)

type Services struct {
	AppInfoService AppInfoService
	ConfigService  ConfigService
	PageService    PageService
	BackendService BackendService
}

func NewServices(
	backendAdapter adapter.BackendAdapter,
	resolved config.ResolvedConfig,
	buildInfo models.AppBuildInfo,
	backendMetrics *metrics.BackendMetrics,
	logger *logger.Logger,
) (*Services, error) {
	configService, err := NewConfigService(resolved, logger)
	if err != nil {
		return nil, err
	}

	backendService := NewBackendValidationService().Wrap(
		NewBackendService(backendAdapter, resolved.APIBaseURL, backendMetrics, logger),
	)

	return &Services{
		AppInfoService: NewAppInfoService(buildInfo, logger),
		ConfigService:  configService,
		PageService:    NewPageService(pages.NewTable(pages.DefaultRoutes)),
		BackendService: backendService,
	}, nil
}
