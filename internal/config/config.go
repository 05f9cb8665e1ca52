// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dashboard server. It aggregates all sub-configurations and is populated by
// merging values from an optional JSON file, environment variables, and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the log level.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout, and static asset settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the outbound backend API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Frontend holds the inputs of the runtime environment resolution: the
	// path to the injected runtime config and the build-time variables.
	// Its variables carry no prefix so that the VITE_* names stay intact.
	Frontend Frontend

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and used as the lowest-priority
	// source underneath environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted by the server
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// StaticDir is the directory holding the built dashboard bundle
	// (index.html and assets). When empty, a built-in shell page is served.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Adapter holds configuration for the backend API client.
type Adapter struct {
	// RequestTimeout is the default timeout for outbound backend requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeInterval is the period of the background backend health probe.
	// Env: ADAPTER_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Frontend holds the raw inputs of runtime environment resolution.
type Frontend struct {
	// RuntimeConfigPath is the optional path to the runtime-injected config
	// file (the window.ENV object of the hosting page).
	// Env: RUNTIME_CONFIG
	RuntimeConfigPath string `env:"RUNTIME_CONFIG"`

	// Build holds the build-time variables.
	Build BuildEnv
}

// BuildEnv is the set of build-time variables. Values baked into the binary
// via -ldflags fill the fields the process environment leaves empty.
type BuildEnv struct {
	// APIURL is the backend base URL. Env: VITE_API_URL
	APIURL string `env:"VITE_API_URL"`

	// AccessToken is a static bearer token for local use. Env: VITE_ACCESS_TOKEN
	AccessToken string `env:"VITE_ACCESS_TOKEN" json:"-"`

	// LocalDevelopment enables local-dev behaviour when equal to "true".
	// Env: VITE_LOCAL_DEVELOPMENT
	LocalDevelopment string `env:"VITE_LOCAL_DEVELOPMENT"`

	// EnableAuth is the boolean-like auth flag. Env: VITE_ENABLE_AUTH
	EnableAuth string `env:"VITE_ENABLE_AUTH"`

	// Mode is the build mode ("development", "production"). Env: MODE
	Mode string `env:"MODE"`
}

// Default values applied by [GetStructuredConfig] to fields that no source
// provided.
const (
	DefaultHTTPAddress           = "localhost:8080"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
	DefaultAdapterRequestTimeout = 15 * time.Second
	DefaultAdapterProbeInterval  = 30 * time.Second
	DefaultLogLevel              = "info"
	DefaultAppVersion            = "dev"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (higher wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// defaults returns the lowest-priority layer of the configuration.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultAppVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultServerRequestTimeout,
			ShutdownTimeout: DefaultServerShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterRequestTimeout,
			ProbeInterval:  DefaultAdapterProbeInterval,
		},
	}
}
