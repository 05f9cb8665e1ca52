// Package http implements the HTTP transport layer of the dashboard server.
//
// It exposes route wiring, request handlers, and middleware. The server
// hosts the dashboard single-page application: it answers every route of the
// dashboard route table with the application shell, serves the runtime
// configuration script the shell loads, and exposes a small JSON API for
// diagnostics and read-only backend data. Request tracing, access logging,
// and metrics are handled in this package before requests are delegated to
// the service layer.
package http
