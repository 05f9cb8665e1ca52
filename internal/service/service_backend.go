package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dashboard-server/internal/adapter"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/metrics"
	"github.com/MKhiriev/dashboard-server/models"
)

// backendService is the read-only view of the dashboard backend. Every call
// goes through the adapter; nothing is cached.
type backendService struct {
	adapter    adapter.BackendAdapter
	apiBaseURL string

	metrics *metrics.BackendMetrics
	now     func() time.Time
	logger  *logger.Logger
}

func NewBackendService(backendAdapter adapter.BackendAdapter, apiBaseURL string, backendMetrics *metrics.BackendMetrics, logger *logger.Logger) BackendService {
	return &backendService{
		adapter:    backendAdapter,
		apiBaseURL: apiBaseURL,
		metrics:    backendMetrics,
		now:        time.Now,
		logger:     logger,
	}
}

// Status implements BackendService. It never fails: an unreachable backend
// is reported through Reachable and Error.
func (s *backendService) Status(ctx context.Context) models.BackendStatus {
	start := s.now()
	err := s.adapter.Ping(ctx)
	elapsed := s.now().Sub(start)

	if s.metrics != nil {
		s.metrics.ObserveProbe(elapsed, err)
	}

	status := models.BackendStatus{
		APIBaseURL: s.apiBaseURL,
		Reachable:  err == nil,
		LatencyMS:  elapsed.Milliseconds(),
	}
	if err != nil {
		status.Error = err.Error()
		logger.FromContext(ctx).Warn().Err(err).Str("api_base_url", s.apiBaseURL).Msg("backend health probe failed")
	}

	return status
}

func (s *backendService) ListChats(ctx context.Context) ([]models.Chat, error) {
	return s.adapter.ListChats(ctx)
}

func (s *backendService) GetChat(ctx context.Context, chatID string) (models.Chat, error) {
	return s.adapter.GetChat(ctx, chatID)
}

// ChatInfo implements BackendService. The sync is looked up only when the
// chat names one; a sync the backend no longer knows leaves Sync nil instead
// of failing the whole view.
func (s *backendService) ChatInfo(ctx context.Context, chatID string) (models.ChatInfo, error) {
	chat, err := s.adapter.GetChat(ctx, chatID)
	if err != nil {
		return models.ChatInfo{}, err
	}

	if chat.SyncID == "" {
		return models.NewChatInfo(chat, nil), nil
	}

	sync, err := s.adapter.GetSync(ctx, chat.SyncID)
	if errors.Is(err, adapter.ErrNotFound) {
		logger.FromContext(ctx).Debug().
			Str("chat_id", chatID).
			Str("sync_id", chat.SyncID).
			Msg("chat references an unknown sync")
		return models.NewChatInfo(chat, nil), nil
	}
	if err != nil {
		return models.ChatInfo{}, fmt.Errorf("error loading sync of chat %q: %w", chatID, err)
	}

	return models.NewChatInfo(chat, &sync), nil
}

func (s *backendService) ListSyncs(ctx context.Context) ([]models.Sync, error) {
	return s.adapter.ListSyncs(ctx)
}

func (s *backendService) GetSync(ctx context.Context, syncID string) (models.Sync, error) {
	return s.adapter.GetSync(ctx, syncID)
}

func (s *backendService) ListSources(ctx context.Context) ([]models.Source, error) {
	return s.adapter.ListSources(ctx)
}

func (s *backendService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	return s.adapter.ListDestinations(ctx)
}

func (s *backendService) ListConnections(ctx context.Context, integrationType string) ([]models.Connection, error) {
	return s.adapter.ListConnections(ctx, integrationType)
}
