package adapter

import "errors"

var (
	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrUnreachable    = errors.New("server unreachable")
	ErrUnhealthy      = errors.New("server unhealthy")
)
