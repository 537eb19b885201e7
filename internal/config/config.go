// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-greeter/internal/logger"
)

// Defaults applied before any other configuration source.
const (
	DefaultAppName           = "airtasker"
	DefaultPort              = 8000
	DefaultLogLevel          = "INFO"
	DefaultLogEncoding       = logger.EncodingJSON
	DefaultLogOutput         = "stdout"
	DefaultCORSOrigin        = "*"
	DefaultEnvFilePath       = ".env"
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-greeter application. It is built once by [GetStructuredConfig] and must
// be treated as read-only afterwards.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the identity of the running application.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Log selects the log level, encoding and sinks.
	Log Log `envPrefix:"LOG_"`

	// CORS holds cross-origin response settings.
	CORS CORS `envPrefix:"CORS_"`

	// DebugMode forces debug logging and dumps the effective configuration
	// at startup.
	// Env: DEBUG_MODE (true only for a case-insensitive "true")
	DebugMode bool `env:"DEBUG_MODE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the dotenv file read before the environment is parsed.
	// Populated via the -env-file flag.
	EnvFilePath string
}

// App holds application-level identity settings.
type App struct {
	// Name is echoed by the root endpoint as "{Name}!\n".
	// Env: APP_NAME
	Name string `env:"NAME"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface to bind. Empty means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the TCP port of the HTTP listener.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// GRPCAddress is the host:port of the optional gRPC health listener.
	// Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// ShutdownTimeout bounds how long in-flight requests may run after an
	// interrupt before connections are closed.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// ReadHeaderTimeout bounds how long a client may take to send request
	// headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}

// Log holds log output settings.
type Log struct {
	// Level is one of DEBUG, INFO, WARNING, ERROR.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is the line template used by the text encoding.
	// Env: LOG_FORMAT
	Format string `env:"FORMAT"`

	// Encoding is "json" or "text".
	// Env: LOG_ENCODING
	Encoding string `env:"ENCODING"`

	// Output is a comma separated list of sinks: stdout, stderr or file paths.
	// Env: LOG_OUTPUT
	Output []string `env:"OUTPUT" envSeparator:","`
}

// CORS holds cross-origin settings.
type CORS struct {
	// Origin is sent as Access-Control-Allow-Origin on every response.
	// Env: CORS_ORIGIN
	Origin string `env:"ORIGIN"`
}

// HTTPAddress returns the listen address in host:port form.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DisplayHost returns the host used in human-facing URLs.
func (s Server) DisplayHost() string {
	if s.Host == "" {
		return "localhost"
	}
	return s.Host
}

// LoggerOptions converts the log settings into [logger.Options].
func (cfg *StructuredConfig) LoggerOptions() logger.Options {
	return logger.Options{
		Level:    cfg.Log.Level,
		Debug:    cfg.DebugMode,
		Encoding: cfg.Log.Encoding,
		Format:   cfg.Log.Format,
		Outputs:  cfg.Log.Output,
	}
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: DefaultAppName,
		},
		Server: Server{
			Port:              DefaultPort,
			ShutdownTimeout:   DefaultShutdownTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		Log: Log{
			Level:    DefaultLogLevel,
			Format:   logger.DefaultFormat,
			Encoding: DefaultLogEncoding,
			Output:   []string{DefaultLogOutput},
		},
		CORS: CORS{
			Origin: DefaultCORSOrigin,
		},
		EnvFilePath: DefaultEnvFilePath,
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path from the -c flag or the CONFIG variable)
//  3. Dotenv file
//  4. Environment variables (environ, in os.Environ form)
//  5. Positional port argument from args
//
// args excludes the program name. Recoverable problems are reported through
// log as warnings. Returns an error if a flag is unknown, the JSON file cannot
// be read, or the final config fails validation.
func GetStructuredConfig(args []string, environ []string, log *logger.Logger) (*StructuredConfig, error) {
	return newConfigBuilder(environ, log).
		withDefaults().
		withFlags(args).
		withDotEnv().
		withJSON().
		withEnv().
		withArgs().
		build()
}

// Load is GetStructuredConfig applied to the process arguments and
// environment.
func Load(log *logger.Logger) (*StructuredConfig, error) {
	return GetStructuredConfig(os.Args[1:], os.Environ(), log)
}
