// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/dashboard-server/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Every route of the dashboard is read-only, so a request with a method the
// matched route does not serve is answered with 404 instead of chi's default
// 405. Under /api the answer is the JSON error body used by the rest of the
// API. A request whose method does match after all (the route tree is
// re-checked with [chi.Mux.Match]) is forwarded to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			utils.WriteError(w, "not found", http.StatusNotFound)
			return
		}
		http.NotFound(w, r)
	}
}
