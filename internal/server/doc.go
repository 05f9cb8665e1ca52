// Package server wires and runs the dashboard's HTTP server.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown bounded by the configured timeout.
package server
