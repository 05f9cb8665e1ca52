// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment with caarlos0/env.
//
// Server settings come from the APP_, SERVER_ and ADAPTER_ prefixed
// variables. The frontend build variables keep their unprefixed names
// (VITE_API_URL, VITE_ACCESS_TOKEN, VITE_LOCAL_DEVELOPMENT,
// VITE_ENABLE_AUTH, MODE) together with RUNTIME_CONFIG, so a bundle built
// with them and this server read the same values.
//
// A value that cannot be converted to its field type fails the whole parse.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
