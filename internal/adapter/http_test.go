// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/dashboard-server/internal/config"
	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL, token string) BackendAdapter {
	t.Helper()
	resolved := config.ResolvedConfig{APIBaseURL: serverURL, AccessToken: token}

	a, err := NewHTTPBackendAdapter(resolved, config.Adapter{RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ResolvedConfig{APIBaseURL: "   "}, config.Adapter{}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8001", want: "http://localhost:8001"},
		{raw: "http://localhost:8001/", want: "http://localhost:8001"},
		{raw: "localhost:8001", want: "http://localhost:8001"},
		{raw: " https://api.example.com/v1/ ", want: "https://api.example.com/v1"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Authorization ────────────────────────────────────────────────────────────

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"token set", "abc", "Bearer abc"},
		{"no token", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.want, r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			require.NoError(t, newTestAdapter(t, srv.URL, tt.token).Ping(context.Background()))
		})
	}
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"healthy", http.StatusOK, nil},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL, "").Ping(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url, "").Ping(context.Background())
	assert.Error(t, err)
}

// ── Chats ────────────────────────────────────────────────────────────────────

func TestListChats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chat/", r.URL.Path)
		writeJSON(t, w, []map[string]any{
			{"id": "c1", "name": "first", "sync_id": "s1", "model_name": "gpt-4o", "messages": []any{}},
			{"id": "c2", "name": "second", "sync_id": "s2", "model_name": "gpt-4o", "messages": []any{}},
		})
	}))
	defer srv.Close()

	chats, err := newTestAdapter(t, srv.URL, "").ListChats(context.Background())

	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "c1", chats[0].ID)
	assert.Equal(t, "s2", chats[1].SyncID)
}

func TestGetChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/c1", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"id":         "c1",
			"name":       "first",
			"sync_id":    "s1",
			"model_name": "gpt-4o",
			"model_settings": map[string]any{
				"temperature": 0.7,
				"max_tokens":  1000,
			},
			"messages": []map[string]any{
				{"id": "m1", "chat_id": "c1", "content": "hi", "role": "user", "created_at": "2024-01-01T00:00:00"},
				{"id": "m2", "chat_id": "c1", "content": "hello", "role": "assistant", "created_at": "2024-01-01T00:00:01"},
			},
			"created_at":  "2024-01-01T00:00:00",
			"modified_at": "2024-01-01T00:00:01",
		})
	}))
	defer srv.Close()

	chat, err := newTestAdapter(t, srv.URL, "").GetChat(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", chat.ID)
	assert.Equal(t, 1000, chat.ModelSettings.MaxTokens)
	require.Len(t, chat.Messages, 2)
	assert.Equal(t, models.RoleUser, chat.Messages[0].Role)
	assert.Equal(t, models.RoleAssistant, chat.Messages[1].Role)
	assert.Equal(t, "2024-01-01T00:00:00", chat.Messages[0].CreatedAt)
}

func TestGetChat_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Chat not found"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").GetChat(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetChat_UnknownRoleRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"id":       "c1",
			"messages": []map[string]any{{"id": "m1", "role": "system"}},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").GetChat(context.Background(), "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidMessageRole)
}

func TestGetChat_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").GetChat(context.Background(), "c1")

	assert.Error(t, err)
}

// ── Syncs ────────────────────────────────────────────────────────────────────

func TestListSyncs_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/", r.URL.Path)
		writeJSON(t, w, []map[string]any{
			{"id": "s1", "name": "notion", "status": "active", "source_connection_id": "conn-1"},
		})
	}))
	defer srv.Close()

	syncs, err := newTestAdapter(t, srv.URL, "").ListSyncs(context.Background())

	require.NoError(t, err)
	require.Len(t, syncs, 1)
	assert.Equal(t, "conn-1", syncs[0].SourceConnectionID)
	assert.Nil(t, syncs[0].DestinationConnectionID)
}

func TestGetSync_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/s1", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"id":                        "s1",
			"name":                      "notion",
			"status":                    "active",
			"source_connection_id":      "conn-1",
			"destination_connection_id": "conn-2",
		})
	}))
	defer srv.Close()

	sync, err := newTestAdapter(t, srv.URL, "").GetSync(context.Background(), "s1")

	require.NoError(t, err)
	require.NotNil(t, sync.DestinationConnectionID)
	assert.Equal(t, "conn-2", *sync.DestinationConnectionID)
}

func TestGetSync_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "expired").GetSync(context.Background(), "s1")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Integrations ─────────────────────────────────────────────────────────────

func TestListSources_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sources/list", r.URL.Path)
		writeJSON(t, w, []map[string]any{
			{"id": "src-1", "name": "Notion", "short_name": "notion", "app_url": "https://notion.so"},
			{"id": "src-2", "name": "Slack", "short_name": "slack"},
		})
	}))
	defer srv.Close()

	sources, err := newTestAdapter(t, srv.URL, "").ListSources(context.Background())

	require.NoError(t, err)
	require.Len(t, sources, 2)
	require.NotNil(t, sources[0].AppURL)
	assert.Equal(t, "https://notion.so", *sources[0].AppURL)
	assert.Nil(t, sources[1].AppURL)
}

func TestListDestinations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/destinations/list", r.URL.Path)
		writeJSON(t, w, []map[string]any{{"id": "dst-1", "name": "Qdrant", "short_name": "qdrant"}})
	}))
	defer srv.Close()

	destinations, err := newTestAdapter(t, srv.URL, "").ListDestinations(context.Background())

	require.NoError(t, err)
	require.Len(t, destinations, 1)
	assert.Equal(t, "qdrant", destinations[0].ShortName)
}

func TestListConnections_Query(t *testing.T) {
	tests := []struct {
		name            string
		integrationType string
		wantQuery       string
	}{
		{"source", "source", "integration_type=source"},
		{"all", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/connections/list", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				writeJSON(t, w, []map[string]any{{"id": "conn-1", "name": "notion", "short_name": "notion", "status": "active"}})
			}))
			defer srv.Close()

			connections, err := newTestAdapter(t, srv.URL, "").ListConnections(context.Background(), tt.integrationType)

			require.NoError(t, err)
			require.Len(t, connections, 1)
			assert.Equal(t, "active", connections[0].Status)
		})
	}
}

func TestListConnections_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").ListConnections(context.Background(), "destination")

	assert.ErrorIs(t, err, ErrForbidden)
}
