package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/dashboard-server/internal/adapter"
	"github.com/MKhiriev/dashboard-server/internal/service"
	"github.com/MKhiriev/dashboard-server/internal/validators"
	"github.com/MKhiriev/dashboard-server/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListChats(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.backend.EXPECT().ListChats(gomock.Any()).Return([]models.Chat{{ID: "c1", Messages: []models.ChatMessage{}}}, nil)

	rr := serve(h, http.MethodGet, "/api/chats")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"length":1`)
	assert.Contains(t, rr.Body.String(), `"id":"c1"`)
}

func TestListChats_EmptyIsArray(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.backend.EXPECT().ListChats(gomock.Any()).Return(nil, nil)

	rr := serve(h, http.MethodGet, "/api/chats")

	assert.JSONEq(t, `{"items":[],"length":0}`, rr.Body.String())
}

func TestGetChat_PassesURLParam(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.backend.EXPECT().GetChat(gomock.Any(), "abc").Return(models.Chat{ID: "abc"}, nil)

	rr := serve(h, http.MethodGet, "/api/chats/abc")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"abc"`)
}

func TestGetChatInfo(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.backend.EXPECT().ChatInfo(gomock.Any(), "abc").Return(models.ChatInfo{
		ID:     "abc",
		SyncID: "s1",
		Sync:   &models.Sync{ID: "s1", Name: "notion"},
	}, nil)

	rr := serve(h, http.MethodGet, "/api/chats/abc/info")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"sync":{"id":"s1","name":"notion"`)
}

func TestGetChatInfo_SyncGone(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.backend.EXPECT().ChatInfo(gomock.Any(), "abc").
		Return(models.NewChatInfo(models.Chat{ID: "abc", SyncID: "gone"}, nil), nil)

	rr := serve(h, http.MethodGet, "/api/chats/abc/info")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"sync_id":"gone"`)
	assert.Contains(t, rr.Body.String(), `"sync":null`)
}

func TestSyncEndpoints(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.backend.EXPECT().ListSyncs(gomock.Any()).Return([]models.Sync{{ID: "s1"}, {ID: "s2"}}, nil)
	m.backend.EXPECT().GetSync(gomock.Any(), "s1").Return(models.Sync{ID: "s1"}, nil)

	rr := serve(h, http.MethodGet, "/api/syncs")
	assert.Contains(t, rr.Body.String(), `"length":2`)

	rr = serve(h, http.MethodGet, "/api/syncs/s1")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"s1"`)
}

func TestIntegrationEndpoints(t *testing.T) {
	h, m := newMockedHandler(t, nil)
	m.backend.EXPECT().ListSources(gomock.Any()).Return([]models.Source{{ID: "src"}}, nil)
	m.backend.EXPECT().ListDestinations(gomock.Any()).Return([]models.Destination{{ID: "dst"}}, nil)
	m.backend.EXPECT().ListConnections(gomock.Any(), "destination").Return([]models.Connection{{ID: "conn"}}, nil)

	assert.Contains(t, serve(h, http.MethodGet, "/api/sources").Body.String(), `"id":"src"`)
	assert.Contains(t, serve(h, http.MethodGet, "/api/destinations").Body.String(), `"id":"dst"`)
	assert.Contains(t, serve(h, http.MethodGet, "/api/connections?integration_type=destination").Body.String(), `"id":"conn"`)
}

func TestBackendErrors_MapToStatus(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{fmt.Errorf("get chat: %w", adapter.ErrNotFound), http.StatusNotFound},
		{adapter.ErrUnauthorized, http.StatusUnauthorized},
		{adapter.ErrForbidden, http.StatusForbidden},
		{adapter.ErrInternalServerError, http.StatusBadGateway},
		{adapter.ErrServiceUnavailable, http.StatusBadGateway},
		{fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidID), http.StatusBadRequest},
		{validators.ErrEmptyID, http.StatusBadRequest},
		{fmt.Errorf("get chat: %w", fmt.Errorf("%w: bad", adapter.ErrBadRequest)), http.StatusBadGateway},
		{adapter.ErrConflict, http.StatusConflict},
		{models.ErrInvalidMessageRole, http.StatusBadGateway},
		{errors.New("dial tcp: connection refused"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h, m := newMockedHandler(t, nil)
			m.backend.EXPECT().GetChat(gomock.Any(), "c1").Return(models.Chat{}, tt.err)

			rr := serve(h, http.MethodGet, "/api/chats/c1")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, `{"error":"error getting chat"}`, rr.Body.String())
		})
	}
}
