// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-greeter/internal/logger"
	"github.com/caarlos0/env/v11"
)

// Environment variable names whose values are checked before parsing.
const (
	envServerPort  = "SERVER_PORT"
	envLogLevel    = "LOG_LEVEL"
	envLogEncoding = "LOG_ENCODING"
	envDebugMode   = "DEBUG_MODE"
)

// parseEnv populates cfg from environ using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.ParseWithOptions fails (e.g. a value cannot
// be converted to the target type).
func parseEnv(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// sanitizeEnv drops or normalizes values that have a documented fallback, so
// that a bad value degrades to the default instead of failing startup.
func sanitizeEnv(environ map[string]string, log *logger.Logger) {
	if raw, ok := environ[envServerPort]; ok {
		if _, err := parsePort(raw); err != nil {
			if strings.TrimSpace(raw) != "" {
				log.Warn().Str("value", raw).Msgf("invalid %s, using default port %d", envServerPort, DefaultPort)
			}
			delete(environ, envServerPort)
		} else {
			environ[envServerPort] = strings.TrimSpace(raw)
		}
	}

	if raw, ok := environ[envLogLevel]; ok {
		if _, err := logger.ParseLevel(raw); err != nil {
			log.Warn().Str("value", raw).Msgf("invalid %s, using %s", envLogLevel, DefaultLogLevel)
			delete(environ, envLogLevel)
		} else {
			environ[envLogLevel] = strings.ToUpper(strings.TrimSpace(raw))
		}
	}

	if raw, ok := environ[envLogEncoding]; ok {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case logger.EncodingJSON, logger.EncodingText:
			environ[envLogEncoding] = strings.ToLower(strings.TrimSpace(raw))
		default:
			log.Warn().Str("value", raw).Msgf("invalid %s, using %s", envLogEncoding, DefaultLogEncoding)
			delete(environ, envLogEncoding)
		}
	}

	if raw, ok := environ[envDebugMode]; ok {
		environ[envDebugMode] = strconv.FormatBool(strings.EqualFold(raw, "true"))
	}
}

// parsePort converts a decimal port string into a TCP port number.
func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	if !validPort(port) {
		return 0, fmt.Errorf("%w: %d out of range", ErrInvalidPort, port)
	}

	return port, nil
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}

// environMap converts os.Environ style KEY=VALUE pairs into a map. Later
// duplicates win.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		m[key] = value
	}
	return m
}
