package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dashboard-server/internal/adapter"
	"github.com/MKhiriev/dashboard-server/internal/service"
	"github.com/MKhiriev/dashboard-server/internal/validators"
	"github.com/MKhiriev/dashboard-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	validators.ErrEmptyID:                http.StatusBadRequest,
	validators.ErrInvalidID:              http.StatusBadRequest,
	validators.ErrInvalidIntegrationType: http.StatusBadRequest,

	adapter.ErrNotFound:     http.StatusNotFound,
	adapter.ErrUnauthorized: http.StatusUnauthorized,
	adapter.ErrForbidden:    http.StatusForbidden,
	adapter.ErrConflict:     http.StatusConflict,

	// the backend itself failed or rejected a request built by this server
	adapter.ErrBadRequest:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrServiceUnavailable:  http.StatusBadGateway,
	models.ErrInvalidMessageRole:   http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadGateway
}
