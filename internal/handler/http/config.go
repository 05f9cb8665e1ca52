package http

import (
	"net/http"

	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/utils"
)

// getEnvConfigScript serves the window.ENV assignment the application shell
// loads before the frontend bundle.
func (h *Handler) getEnvConfigScript(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	script, err := h.services.ConfigService.RuntimeScript(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEnvConfigScript").Msg("error rendering runtime config")
		http.Error(w, "error rendering runtime config", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(script)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	view := h.services.ConfigService.View(r.Context())

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, view, http.StatusOK)
}
