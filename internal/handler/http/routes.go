package http

import (
	"github.com/MKhiriev/dashboard-server/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.httpMetrics.Middleware)

	router.Get("/env-config.js", h.getEnvConfigScript)
	router.Method("GET", "/metrics", metrics.Handler(h.registry))

	router.Route("/api", func(r chi.Router) {
		r.Get("/config", h.getConfig)
		r.Get("/version", h.getVersion)
		r.Get("/status", h.getStatus)
		r.Get("/routes", h.getRoutes)

		// read-only backend data
		r.Get("/chats", h.listChats)
		r.Get("/chats/{chatId}", h.getChat)
		r.Get("/chats/{chatId}/info", h.getChatInfo)
		r.Get("/syncs", h.listSyncs)
		r.Get("/syncs/{syncId}", h.getSync)
		r.Get("/sources", h.listSources)
		r.Get("/destinations", h.listDestinations)
		r.Get("/connections", h.listConnections)

		r.NotFound(h.apiNotFound)
	})

	// every other path belongs to the single-page application
	router.Get("/*", h.serveApp)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
