package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/dashboard-server/internal/adapter"
	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/handler/http"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/metrics"
	"github.com/MKhiriev/dashboard-server/internal/server"
	"github.com/MKhiriev/dashboard-server/internal/service"
	"github.com/MKhiriev/dashboard-server/internal/utils"
	"github.com/MKhiriev/dashboard-server/internal/workers"
	"github.com/MKhiriev/dashboard-server/models"
)

// Set with -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
	buildMode    string

	// build-time frontend variables, used when the process environment
	// does not set them
	bakedAPIURL           string
	bakedAccessToken      string
	bakedLocalDevelopment string
	bakedEnableAuth       string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		panic(fmt.Errorf("error getting configs: %w", err))
	}

	log := logger.NewLogger("dashboard-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	build, err := cfg.Frontend.Build.WithBaked(config.BuildEnv{
		APIURL:           bakedAPIURL,
		AccessToken:      bakedAccessToken,
		LocalDevelopment: bakedLocalDevelopment,
		EnableAuth:       bakedEnableAuth,
		Mode:             buildMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error applying build-time variables")
	}

	runtimeEnv, err := config.LoadRuntimeEnv(cfg.Frontend.RuntimeConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading runtime config")
	}

	resolved := config.Resolve(runtimeEnv, build)
	log.Info().
		Str("api_base_url", resolved.APIBaseURL).
		Bool("is_local_development", resolved.IsLocalDevelopment).
		Str("auth_enabled", resolved.AuthEnabled).
		Bool("has_access_token", resolved.HasAccessToken()).
		Any("sources", resolved.Sources).
		Msg("resolved frontend configuration")

	if resolved.HasAccessToken() {
		warnOnExpiredToken(log, resolved.AccessToken)
	}

	version := buildVersion
	if version == "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit, build.Mode)
	log.Info().Any("build", buildInfo.Response()).Msg("build info")

	backendAdapter, err := adapter.NewHTTPBackendAdapter(resolved, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	registry := metrics.NewRegistry()

	services, err := service.NewServices(backendAdapter, resolved, buildInfo, metrics.NewBackendMetrics(registry), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := http.NewHandler(services, cfg.Server, registry, log)

	probe := workers.NewBackendProbe(services.BackendService, cfg.Adapter.ProbeInterval, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log, probe)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func warnOnExpiredToken(log *logger.Logger, token string) {
	info, err := utils.InspectToken(token, time.Now())
	if err != nil {
		log.Debug().Err(err).Msg("access token is opaque")
		return
	}
	if info.Expired {
		log.Warn().Time("expires_at", *info.ExpiresAt).Msg("configured access token has expired")
	}
}
