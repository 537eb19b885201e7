// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled once at startup from multiple sources in the
// following priority order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (-c / -config flag or CONFIG variable)
//  3. Dotenv file (-env-file flag, ".env" by default)
//  4. Environment variables
//  5. The positional port argument
//
// Malformed values that have a documented default (port, log level, log
// encoding) are logged as warnings and replaced by the default instead of
// failing startup. The entry point is [GetStructuredConfig].
package config
