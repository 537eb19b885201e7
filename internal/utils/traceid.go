// Package utils holds small helpers shared by the transport packages.
package utils

import "github.com/google/uuid"

// MaxTraceIDLength caps client supplied trace ids before they reach the logs.
const MaxTraceIDLength = 128

// TraceID returns incoming when it is a usable trace id and a freshly
// generated one otherwise. Generated ids are time-ordered UUIDv7 values,
// falling back to random v4 if the clock source fails.
func TraceID(incoming string) string {
	if incoming != "" && len(incoming) <= MaxTraceIDLength {
		return incoming
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
