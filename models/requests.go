package models

// ChatRequest addresses a single chat.
type ChatRequest struct {
	ChatID string
}

// SyncRequest addresses a single sync.
type SyncRequest struct {
	SyncID string
}

// ConnectionsRequest filters the connection list by integration type.
// An empty type lists every connection.
type ConnectionsRequest struct {
	IntegrationType string
}

// Integration types accepted by ConnectionsRequest.
const (
	IntegrationTypeSource      = "source"
	IntegrationTypeDestination = "destination"
)
