package http

import (
	"net/http"

	"github.com/MKhiriev/dashboard-server/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo.Response(), http.StatusOK)
}
