package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dashboard-server/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldChatID          = "chat_id"
	FieldSyncID          = "sync_id"
	FieldIntegrationType = "integration_type"
)

var allowedIntegrationTypes = []string{
	"",
	models.IntegrationTypeSource,
	models.IntegrationTypeDestination,
}

// BackendRequestValidator checks the parameters of backend reads before they
// are turned into backend URLs. Identifiers become path segments, so they
// must not be able to escape it.
type BackendRequestValidator struct {
}

func NewBackendRequestValidator() Validator {
	return &BackendRequestValidator{}
}

func (v *BackendRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(*value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(*value, fields...)

	case models.ConnectionsRequest:
		return v.validateConnectionsRequest(value, fields...)
	case *models.ConnectionsRequest:
		return v.validateConnectionsRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BackendRequestValidator) validateChatRequest(req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChatID}
	}

	for _, f := range fields {
		switch f {
		case FieldChatID:
			if err := validatePathSegment(req.ChatID); err != nil {
				return fmt.Errorf("%s: %w", FieldChatID, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *BackendRequestValidator) validateSyncRequest(req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSyncID}
	}

	for _, f := range fields {
		switch f {
		case FieldSyncID:
			if err := validatePathSegment(req.SyncID); err != nil {
				return fmt.Errorf("%s: %w", FieldSyncID, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *BackendRequestValidator) validateConnectionsRequest(req models.ConnectionsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIntegrationType}
	}

	for _, f := range fields {
		switch f {
		case FieldIntegrationType:
			if !isAllowedIntegrationType(req.IntegrationType) {
				return fmt.Errorf("%w: got %q", ErrInvalidIntegrationType, req.IntegrationType)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func isAllowedIntegrationType(t string) bool {
	for _, allowed := range allowedIntegrationTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func validatePathSegment(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	if strings.ContainsAny(id, "/?#") || id == "." || id == ".." {
		return ErrInvalidID
	}
	return nil
}
