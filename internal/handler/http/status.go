package http

import (
	"net/http"

	"github.com/MKhiriev/dashboard-server/internal/utils"
)

// getStatus reports backend reachability. An unreachable backend answers
// 503 with the same body.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.BackendService.Status(r.Context())

	code := http.StatusOK
	if !status.Reachable {
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, status, code)
}
