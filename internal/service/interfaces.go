package service

import (
	"context"

	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/pages"
	"github.com/MKhiriev/dashboard-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

type ConfigService interface {
	Resolved(ctx context.Context) config.ResolvedConfig
	View(ctx context.Context) models.ConfigView
	RuntimeScript(ctx context.Context) ([]byte, error)
}

type PageService interface {
	Routes(ctx context.Context) []pages.Route
	Match(ctx context.Context, path string) pages.Match
}

type BackendService interface {
	Status(ctx context.Context) models.BackendStatus

	ListChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, chatID string) (models.Chat, error)
	ChatInfo(ctx context.Context, chatID string) (models.ChatInfo, error)

	ListSyncs(ctx context.Context) ([]models.Sync, error)
	GetSync(ctx context.Context, syncID string) (models.Sync, error)

	ListSources(ctx context.Context) ([]models.Source, error)
	ListDestinations(ctx context.Context) ([]models.Destination, error)
	ListConnections(ctx context.Context, integrationType string) ([]models.Connection, error)
}

// BackendServiceWrapper defines middleware composition for BackendService.
// Implementations wrap an existing BackendService to add behavior such as
// validating.
type BackendServiceWrapper interface {
	Wrap(BackendService) BackendService // returns a decorated BackendService applying additional behavior
}
