package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"dario.cat/mergo"
	"github.com/tidwall/jsonc"
)

// ErrInvalidRuntimeConfig is returned by [ParseRuntimeEnv] when the runtime
// config payload is neither a JSON object nor a window.ENV assignment.
var ErrInvalidRuntimeConfig = errors.New("invalid runtime config")

// RuntimeEnv is the runtime-injected configuration object, the window.ENV of
// the hosting page. Every field is optional: a nil pointer means the hosting
// environment did not provide the value.
type RuntimeEnv struct {
	APIURL           *string `json:"API_URL,omitempty"`
	LocalDevelopment *Flag   `json:"LOCAL_DEVELOPMENT,omitempty"`
	EnableAuth       *string `json:"ENABLE_AUTH,omitempty"`
}

// Flag is a boolean that also accepts the strings "true" and "false" when
// decoded from JSON. Hosting pages often template window.ENV from shell
// variables, which turns booleans into strings.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case bool:
		*f = Flag(value)
		return nil
	case string:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("flag %q: %w", value, err)
		}
		*f = Flag(parsed)
		return nil
	default:
		return fmt.Errorf("flag must be a bool or a string, got %s", string(b))
	}
}

// LoadRuntimeEnv reads the runtime-injected config from path.
// An empty path means no runtime object was injected and yields (nil, nil).
func LoadRuntimeEnv(path string) (*RuntimeEnv, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading runtime config: %w", err)
	}

	runtimeEnv, err := ParseRuntimeEnv(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return runtimeEnv, nil
}

// ParseRuntimeEnv decodes a runtime config payload. The payload is either a
// JSON object or a `window.ENV = {...};` assignment whose object is JSON.
// Comments and trailing commas are allowed; unquoted keys and single-quoted
// strings are not.
func ParseRuntimeEnv(data []byte) (*RuntimeEnv, error) {
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("{")) {
		start := bytes.IndexByte(data, '{')
		end := bytes.LastIndexByte(data, '}')
		if start < 0 || end < start {
			return nil, ErrInvalidRuntimeConfig
		}
		data = data[start : end+1]
	}

	var runtimeEnv RuntimeEnv
	if err := json.Unmarshal(jsonc.ToJSON(data), &runtimeEnv); err != nil {
		return nil, fmt.Errorf("error decoding runtime config: %w", err)
	}

	return &runtimeEnv, nil
}

// WithBaked fills the fields of b that the process environment left empty
// with the values baked into the binary at build time.
func (b BuildEnv) WithBaked(baked BuildEnv) (BuildEnv, error) {
	if err := mergo.Merge(&b, baked); err != nil {
		return BuildEnv{}, fmt.Errorf("error merging baked build env: %w", err)
	}

	return b, nil
}

// RuntimeEnv returns the runtime object a hosting page would inject to
// reproduce c. The access token is never part of it.
func (c ResolvedConfig) RuntimeEnv() RuntimeEnv {
	return RuntimeEnv{
		APIURL:           ptr(c.APIBaseURL),
		LocalDevelopment: ptr(Flag(c.IsLocalDevelopment)),
		EnableAuth:       ptr(c.AuthEnabled),
	}
}

// RenderRuntimeScript renders env as an env-config.js script body that
// assigns window.ENV. [ParseRuntimeEnv] accepts its output.
func RenderRuntimeScript(env RuntimeEnv) ([]byte, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("error encoding runtime config: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(payload) + 16)
	buf.WriteString("window.ENV = ")
	buf.Write(payload)
	buf.WriteString(";\n")

	return buf.Bytes(), nil
}
