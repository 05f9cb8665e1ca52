package http

import (
	"io/fs"
	"os"

	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/metrics"
	"github.com/MKhiriev/dashboard-server/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	// static holds the built frontend; nil when no static directory is
	// configured, in which case the built-in shell is served.
	static fs.FS

	registry    *prometheus.Registry
	httpMetrics *metrics.HTTPMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	var static fs.FS
	if serverCfg.StaticDir != "" {
		static = os.DirFS(serverCfg.StaticDir)
	}

	logger.Info().Str("static_dir", serverCfg.StaticDir).Msg("http handler created")
	return &Handler{
		services:    services,
		static:      static,
		registry:    registry,
		httpMetrics: metrics.NewHTTPMetrics(registry),
		logger:      logger,
	}
}
