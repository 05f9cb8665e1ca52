// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Fallback values used when neither the runtime object nor the build-time
// variables provide a field.
const (
	DefaultAPIBaseURL  = "http://localhost:8001"
	DefaultAuthEnabled = "true"

	// DevelopmentMode is the build mode that turns local development on.
	DevelopmentMode = "development"
)

// Source names the input that supplied a resolved field.
type Source string

const (
	SourceRuntime Source = "runtime"
	SourceBuild   Source = "build"
	SourceMode    Source = "mode"
	SourceDefault Source = "default"
)

// ResolvedConfig is the frozen configuration snapshot shared by every
// consumer of the frontend environment. It is computed once by [Resolve] and
// passed by value; nothing mutates it afterwards.
type ResolvedConfig struct {
	// APIBaseURL is the base URL for all backend API calls.
	APIBaseURL string `json:"api_base_url"`

	// AccessToken is the static bearer token for local use, or "".
	AccessToken string `json:"-"`

	// IsLocalDevelopment enables local-dev-only behaviour.
	IsLocalDevelopment bool `json:"is_local_development"`

	// AuthEnabled is the boolean-like auth flag, "true" unless a source says
	// otherwise.
	AuthEnabled string `json:"auth_enabled"`

	// Sources records which input supplied each field, keyed by the JSON
	// field name.
	Sources map[string]Source `json:"sources"`
}

// AuthRequired reports whether the auth flag is set to "true".
func (c ResolvedConfig) AuthRequired() bool {
	return c.AuthEnabled == "true"
}

// HasAccessToken reports whether a static access token was configured.
func (c ResolvedConfig) HasAccessToken() bool {
	return c.AccessToken != ""
}

// Resolve computes the frontend configuration from the runtime-injected
// object (nil when absent) and the build-time variables.
//
// Each field is resolved on its own by taking the first source that holds a
// value:
//   - APIBaseURL:         runtime API_URL, VITE_API_URL, DefaultAPIBaseURL
//   - AccessToken:        VITE_ACCESS_TOKEN, ""
//   - IsLocalDevelopment: runtime LOCAL_DEVELOPMENT, then
//     VITE_LOCAL_DEVELOPMENT == "true" OR MODE == "development"
//   - AuthEnabled:        runtime ENABLE_AUTH, VITE_ENABLE_AUTH, DefaultAuthEnabled
//
// A runtime value counts as present when it was set, so an explicit
// LOCAL_DEVELOPMENT false is honoured and never falls through. String values
// count as present when non-empty. Resolve never fails and has no side
// effects.
func Resolve(runtime *RuntimeEnv, build BuildEnv) ResolvedConfig {
	if runtime == nil {
		runtime = &RuntimeEnv{}
	}

	cfg := ResolvedConfig{Sources: make(map[string]Source, 4)}

	cfg.APIBaseURL, cfg.Sources["api_base_url"] = firstString(
		candidate{runtime.APIURL, SourceRuntime},
		candidate{&build.APIURL, SourceBuild},
		candidate{ptr(DefaultAPIBaseURL), SourceDefault},
	)

	cfg.AccessToken, cfg.Sources["access_token"] = firstString(
		candidate{&build.AccessToken, SourceBuild},
		candidate{ptr(""), SourceDefault},
	)

	cfg.IsLocalDevelopment, cfg.Sources["is_local_development"] = resolveLocalDevelopment(runtime.LocalDevelopment, build)

	cfg.AuthEnabled, cfg.Sources["auth_enabled"] = firstString(
		candidate{runtime.EnableAuth, SourceRuntime},
		candidate{&build.EnableAuth, SourceBuild},
		candidate{ptr(DefaultAuthEnabled), SourceDefault},
	)

	return cfg
}

func resolveLocalDevelopment(runtimeFlag *Flag, build BuildEnv) (bool, Source) {
	switch {
	case runtimeFlag != nil:
		return bool(*runtimeFlag), SourceRuntime
	case build.LocalDevelopment == "true":
		return true, SourceBuild
	case build.Mode == DevelopmentMode:
		return true, SourceMode
	default:
		return false, SourceDefault
	}
}

type candidate struct {
	value  *string
	source Source
}

// firstString returns the first candidate holding a non-empty value. The last
// candidate is the default and is returned as is.
func firstString(candidates ...candidate) (string, Source) {
	for _, c := range candidates[:len(candidates)-1] {
		if c.value != nil && *c.value != "" {
			return *c.value, c.source
		}
	}

	last := candidates[len(candidates)-1]
	return *last.value, last.source
}

func ptr[T any](v T) *T {
	return &v
}
