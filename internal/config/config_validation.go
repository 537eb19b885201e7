// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults already cover
// every field, so a failure means a source explicitly set a bad value that has
// no documented fallback.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Name) == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.ShutdownTimeout < 0 || cfg.Server.ReadHeaderTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.CORS.Origin == "" {
		return ErrInvalidCORSConfigs
	}

	return nil
}
