package config

import "errors"

var (
	// ErrInvalidPort is wrapped by port parsing when a value is not a decimal
	// integer in 1..65535.
	ErrInvalidPort = errors.New("invalid port number")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty app name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a negative shutdown timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCORSConfigs indicates an empty CORS origin.
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
)
