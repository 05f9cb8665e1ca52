package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/utils"
	"github.com/MKhiriev/dashboard-server/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. The base URL is the resolved API base URL; when the
// resolved configuration carries an access token it is sent as a bearer token
// on every request.
//
// Returns an error wrapping [ErrInvalidBaseURL] if the base URL cannot be
// parsed.
func NewHTTPBackendAdapter(resolved config.ResolvedConfig, adapterCfg config.Adapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(resolved.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if resolved.HasAccessToken() {
		client.SetAuthToken(resolved.AccessToken)
	}

	return &httpBackendAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Ping implements [BackendAdapter]. It issues GET /health and succeeds on any
// 2xx answer.
func (h *httpBackendAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListChats implements [BackendAdapter] via GET /chat/.
func (h *httpBackendAdapter) ListChats(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := h.getJSON(ctx, "/chat/", nil, &chats); err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	return chats, nil
}

// GetChat implements [BackendAdapter] via GET /chat/{chatID}.
func (h *httpBackendAdapter) GetChat(ctx context.Context, chatID string) (models.Chat, error) {
	var chat models.Chat
	if err := h.getJSON(ctx, "/chat/"+url.PathEscape(chatID), nil, &chat); err != nil {
		return models.Chat{}, fmt.Errorf("get chat %q: %w", chatID, err)
	}

	return chat, nil
}

// ListSyncs implements [BackendAdapter] via GET /sync/.
func (h *httpBackendAdapter) ListSyncs(ctx context.Context) ([]models.Sync, error) {
	var syncs []models.Sync
	if err := h.getJSON(ctx, "/sync/", nil, &syncs); err != nil {
		return nil, fmt.Errorf("list syncs: %w", err)
	}

	return syncs, nil
}

// GetSync implements [BackendAdapter] via GET /sync/{syncID}.
func (h *httpBackendAdapter) GetSync(ctx context.Context, syncID string) (models.Sync, error) {
	var sync models.Sync
	if err := h.getJSON(ctx, "/sync/"+url.PathEscape(syncID), nil, &sync); err != nil {
		return models.Sync{}, fmt.Errorf("get sync %q: %w", syncID, err)
	}

	return sync, nil
}

// ListSources implements [BackendAdapter] via GET /sources/list.
func (h *httpBackendAdapter) ListSources(ctx context.Context) ([]models.Source, error) {
	var sources []models.Source
	if err := h.getJSON(ctx, "/sources/list", nil, &sources); err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	return sources, nil
}

// ListDestinations implements [BackendAdapter] via GET /destinations/list.
func (h *httpBackendAdapter) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	var destinations []models.Destination
	if err := h.getJSON(ctx, "/destinations/list", nil, &destinations); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	return destinations, nil
}

// ListConnections implements [BackendAdapter] via
// GET /connections/list?integration_type={integrationType}. An empty
// integrationType lists every connection.
func (h *httpBackendAdapter) ListConnections(ctx context.Context, integrationType string) ([]models.Connection, error) {
	var query map[string]string
	if integrationType != "" {
		query = map[string]string{"integration_type": integrationType}
	}

	var connections []models.Connection
	if err := h.getJSON(ctx, "/connections/list", query, &connections); err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	return connections, nil
}

func (h *httpBackendAdapter) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	req := h.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logResponse(resp, path)
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (h *httpBackendAdapter) logResponse(resp *resty.Response, path string) {
	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend request failed")
}
