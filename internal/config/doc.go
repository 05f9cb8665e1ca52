// Package config provides configuration loading, merging, and validation
// facilities for the dashboard server, and the runtime environment resolution
// consumed by the dashboard frontend.
//
// Server configuration is assembled from multiple sources in the following
// priority order (higher sources override lower non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The frontend environment is resolved separately, field by field, by
// [Resolve]: a runtime-injected object beats build-time variables, which beat
// hard-coded defaults. The result is an immutable [ResolvedConfig] that is
// built once in main and handed to every consumer.
//
// The main entry points are [GetStructuredConfig], [LoadRuntimeEnv],
// [BuildEnv.WithBaked] and [Resolve].
package config
