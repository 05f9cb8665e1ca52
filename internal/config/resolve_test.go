package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_APIBaseURL(t *testing.T) {
	tests := []struct {
		name       string
		runtime    *RuntimeEnv
		build      BuildEnv
		want       string
		wantSource Source
	}{
		{
			name:       "runtime beats build",
			runtime:    &RuntimeEnv{APIURL: ptr("https://x")},
			build:      BuildEnv{APIURL: "https://y"},
			want:       "https://x",
			wantSource: SourceRuntime,
		},
		{
			name:       "runtime only",
			runtime:    &RuntimeEnv{APIURL: ptr("https://x")},
			want:       "https://x",
			wantSource: SourceRuntime,
		},
		{
			name:       "no runtime object, build variable",
			runtime:    nil,
			build:      BuildEnv{APIURL: "https://y"},
			want:       "https://y",
			wantSource: SourceBuild,
		},
		{
			name:       "runtime object without API_URL falls to build",
			runtime:    &RuntimeEnv{},
			build:      BuildEnv{APIURL: "https://y"},
			want:       "https://y",
			wantSource: SourceBuild,
		},
		{
			name:       "empty runtime API_URL falls to build",
			runtime:    &RuntimeEnv{APIURL: ptr("")},
			build:      BuildEnv{APIURL: "https://y"},
			want:       "https://y",
			wantSource: SourceBuild,
		},
		{
			name:       "no sources",
			runtime:    nil,
			want:       "http://localhost:8001",
			wantSource: SourceDefault,
		},
		{
			name:       "runtime object present but empty, no build variable",
			runtime:    &RuntimeEnv{},
			want:       "http://localhost:8001",
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.runtime, tt.build)
			assert.Equal(t, tt.want, got.APIBaseURL)
			assert.Equal(t, tt.wantSource, got.Sources["api_base_url"])
		})
	}
}

func TestResolve_AccessToken(t *testing.T) {
	got := Resolve(nil, BuildEnv{AccessToken: "secret"})
	assert.Equal(t, "secret", got.AccessToken)
	assert.True(t, got.HasAccessToken())
	assert.Equal(t, SourceBuild, got.Sources["access_token"])

	got = Resolve(&RuntimeEnv{APIURL: ptr("https://x")}, BuildEnv{})
	assert.Equal(t, "", got.AccessToken)
	assert.False(t, got.HasAccessToken())
	assert.Equal(t, SourceDefault, got.Sources["access_token"])
}

func TestResolve_IsLocalDevelopment(t *testing.T) {
	tests := []struct {
		name       string
		runtime    *RuntimeEnv
		build      BuildEnv
		want       bool
		wantSource Source
	}{
		{
			name:       "development mode without explicit flags",
			build:      BuildEnv{Mode: "development"},
			want:       true,
			wantSource: SourceMode,
		},
		{
			name:       "string false in production",
			build:      BuildEnv{LocalDevelopment: "false", Mode: "production"},
			want:       false,
			wantSource: SourceDefault,
		},
		{
			name:       "string true in production",
			build:      BuildEnv{LocalDevelopment: "true", Mode: "production"},
			want:       true,
			wantSource: SourceBuild,
		},
		{
			name:       "string false does not cancel development mode",
			build:      BuildEnv{LocalDevelopment: "false", Mode: "development"},
			want:       true,
			wantSource: SourceMode,
		},
		{
			name:       "only exact lowercase true counts",
			build:      BuildEnv{LocalDevelopment: "TRUE"},
			want:       false,
			wantSource: SourceDefault,
		},
		{
			name:       "runtime true beats production build",
			runtime:    &RuntimeEnv{LocalDevelopment: ptr(Flag(true))},
			build:      BuildEnv{Mode: "production"},
			want:       true,
			wantSource: SourceRuntime,
		},
		{
			name:       "explicit runtime false is honoured",
			runtime:    &RuntimeEnv{LocalDevelopment: ptr(Flag(false))},
			build:      BuildEnv{LocalDevelopment: "true", Mode: "development"},
			want:       false,
			wantSource: SourceRuntime,
		},
		{
			name:       "nothing set",
			want:       false,
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.runtime, tt.build)
			assert.Equal(t, tt.want, got.IsLocalDevelopment)
			assert.Equal(t, tt.wantSource, got.Sources["is_local_development"])
		})
	}
}

func TestResolve_AuthEnabled(t *testing.T) {
	tests := []struct {
		name         string
		runtime      *RuntimeEnv
		build        BuildEnv
		want         string
		wantRequired bool
	}{
		{name: "default", want: "true", wantRequired: true},
		{name: "build false", build: BuildEnv{EnableAuth: "false"}, want: "false"},
		{
			name:    "runtime beats build",
			runtime: &RuntimeEnv{EnableAuth: ptr("false")},
			build:   BuildEnv{EnableAuth: "true"},
			want:    "false",
		},
		{
			name:         "empty runtime value falls through",
			runtime:      &RuntimeEnv{EnableAuth: ptr("")},
			want:         "true",
			wantRequired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.runtime, tt.build)
			assert.Equal(t, tt.want, got.AuthEnabled)
			assert.Equal(t, tt.wantRequired, got.AuthRequired())
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	runtime := &RuntimeEnv{APIURL: ptr("https://x"), LocalDevelopment: ptr(Flag(false))}
	build := BuildEnv{APIURL: "https://y", AccessToken: "t", EnableAuth: "false", Mode: "development"}

	first := Resolve(runtime, build)
	second := Resolve(runtime, build)

	assert.Equal(t, first, second)
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	runtime := &RuntimeEnv{}
	build := BuildEnv{}

	_ = Resolve(runtime, build)

	assert.Equal(t, RuntimeEnv{}, *runtime)
	assert.Equal(t, BuildEnv{}, build)
}
