package http

import (
	"net/http"

	"github.com/MKhiriev/dashboard-server/internal/logger"
	"github.com/MKhiriev/dashboard-server/internal/utils"
	"github.com/MKhiriev/dashboard-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.services.BackendService.ListChats(r.Context())
	if err != nil {
		h.backendError(w, r, "*Handler.listChats", "error listing chats", err)
		return
	}

	utils.WriteJSON(w, models.NewListResponse(chats), http.StatusOK)
}

func (h *Handler) getChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.services.BackendService.GetChat(r.Context(), chi.URLParam(r, "chatId"))
	if err != nil {
		h.backendError(w, r, "*Handler.getChat", "error getting chat", err)
		return
	}

	utils.WriteJSON(w, chat, http.StatusOK)
}

func (h *Handler) getChatInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.BackendService.ChatInfo(r.Context(), chi.URLParam(r, "chatId"))
	if err != nil {
		h.backendError(w, r, "*Handler.getChatInfo", "error getting chat info", err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) listSyncs(w http.ResponseWriter, r *http.Request) {
	syncs, err := h.services.BackendService.ListSyncs(r.Context())
	if err != nil {
		h.backendError(w, r, "*Handler.listSyncs", "error listing syncs", err)
		return
	}

	utils.WriteJSON(w, models.NewListResponse(syncs), http.StatusOK)
}

func (h *Handler) getSync(w http.ResponseWriter, r *http.Request) {
	sync, err := h.services.BackendService.GetSync(r.Context(), chi.URLParam(r, "syncId"))
	if err != nil {
		h.backendError(w, r, "*Handler.getSync", "error getting sync", err)
		return
	}

	utils.WriteJSON(w, sync, http.StatusOK)
}

func (h *Handler) listSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.services.BackendService.ListSources(r.Context())
	if err != nil {
		h.backendError(w, r, "*Handler.listSources", "error listing sources", err)
		return
	}

	utils.WriteJSON(w, models.NewListResponse(sources), http.StatusOK)
}

func (h *Handler) listDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.services.BackendService.ListDestinations(r.Context())
	if err != nil {
		h.backendError(w, r, "*Handler.listDestinations", "error listing destinations", err)
		return
	}

	utils.WriteJSON(w, models.NewListResponse(destinations), http.StatusOK)
}

func (h *Handler) listConnections(w http.ResponseWriter, r *http.Request) {
	integrationType := r.URL.Query().Get("integration_type")

	connections, err := h.services.BackendService.ListConnections(r.Context(), integrationType)
	if err != nil {
		h.backendError(w, r, "*Handler.listConnections", "error listing connections", err)
		return
	}

	utils.WriteJSON(w, models.NewListResponse(connections), http.StatusOK)
}

func (h *Handler) apiNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "not found", http.StatusNotFound)
}

func (h *Handler) backendError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	status := statusFromError(err)

	logger.FromRequest(r).Err(err).
		Str("func", funcName).
		Int("status", status).
		Msg(msg)

	utils.WriteError(w, msg, status)
}
