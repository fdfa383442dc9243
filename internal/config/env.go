// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment using the `env` and
// `envPrefix` tags on [StructuredConfig] and [ClientConfig]. The client reads
// its variables under the VEEPO_ prefix.
func parseEnv(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix, Environment: environ()}); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// environ returns the process environment with values trimmed. Blank
// variables are dropped so `APP_TOKEN_SIGN_KEY=` in a compose file counts as
// unset instead of failing to parse or overriding a default.
func environ() map[string]string {
	vars := env.ToMap(os.Environ())
	for k, v := range vars {
		v = strings.TrimSpace(v)
		if v == "" {
			delete(vars, k)
			continue
		}
		vars[k] = v
	}
	return vars
}
