// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the dashboard backend API.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]) pointed at the resolved API base
// URL and authenticated with the static access token when one is configured.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/dashboard-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines read access to the dashboard backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BackendAdapter interface {
	// Ping checks that the backend answers its health endpoint.
	Ping(ctx context.Context) error

	// ListChats returns every chat visible to the caller.
	ListChats(ctx context.Context) ([]models.Chat, error)

	// GetChat returns a chat with its messages.
	GetChat(ctx context.Context, chatID string) (models.Chat, error)

	// ListSyncs returns every configured sync.
	ListSyncs(ctx context.Context) ([]models.Sync, error)

	// GetSync returns a single sync.
	GetSync(ctx context.Context, syncID string) (models.Sync, error)

	// ListSources returns the available source integrations.
	ListSources(ctx context.Context) ([]models.Source, error)

	// ListDestinations returns the available destination integrations.
	ListDestinations(ctx context.Context) ([]models.Destination, error)

	// ListConnections returns the connections of the given integration type
	// ("source" or "destination").
	ListConnections(ctx context.Context, integrationType string) ([]models.Connection, error)
}
