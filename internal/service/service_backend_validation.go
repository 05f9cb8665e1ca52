package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dashboard-server/internal/validators"
	"github.com/MKhiriev/dashboard-server/models"
)

type BackendValidationService struct {
	inner     BackendService
	validator validators.Validator
}

func NewBackendValidationService() BackendServiceWrapper {
	return &BackendValidationService{
		validator: validators.NewBackendRequestValidator(),
	}
}

func (v *BackendValidationService) Status(ctx context.Context) models.BackendStatus {
	return v.inner.Status(ctx)
}

func (v *BackendValidationService) ListChats(ctx context.Context) ([]models.Chat, error) {
	return v.inner.ListChats(ctx)
}

func (v *BackendValidationService) GetChat(ctx context.Context, chatID string) (models.Chat, error) {
	if err := v.validator.Validate(ctx, models.ChatRequest{ChatID: chatID}); err != nil {
		return models.Chat{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetChat(ctx, chatID)
}

func (v *BackendValidationService) ChatInfo(ctx context.Context, chatID string) (models.ChatInfo, error) {
	if err := v.validator.Validate(ctx, models.ChatRequest{ChatID: chatID}); err != nil {
		return models.ChatInfo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChatInfo(ctx, chatID)
}

func (v *BackendValidationService) ListSyncs(ctx context.Context) ([]models.Sync, error) {
	return v.inner.ListSyncs(ctx)
}

func (v *BackendValidationService) GetSync(ctx context.Context, syncID string) (models.Sync, error) {
	if err := v.validator.Validate(ctx, models.SyncRequest{SyncID: syncID}); err != nil {
		return models.Sync{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetSync(ctx, syncID)
}

func (v *BackendValidationService) ListSources(ctx context.Context) ([]models.Source, error) {
	return v.inner.ListSources(ctx)
}

func (v *BackendValidationService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	return v.inner.ListDestinations(ctx)
}

func (v *BackendValidationService) ListConnections(ctx context.Context, integrationType string) ([]models.Connection, error) {
	if err := v.validator.Validate(ctx, models.ConnectionsRequest{IntegrationType: integrationType}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListConnections(ctx, integrationType)
}

func (v *BackendValidationService) Wrap(wrapped BackendService) BackendService {
	v.inner = wrapped
	return v
}
