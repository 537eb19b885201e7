// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-greeter application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// Output sinks and encoding are pluggable: see [Options] and [New].
package logger

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Supported values of [Options.Encoding].
const (
	EncodingJSON = "json"
	EncodingText = "text"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	// closers holds file sinks opened by New. Only the root logger owns them.
	closers []io.Closer
}

// Options describes where log entries go and how they are rendered.
type Options struct {
	// Level is one of DEBUG, INFO, WARNING or ERROR (case-insensitive).
	Level string

	// Debug forces the debug level regardless of Level.
	Debug bool

	// Encoding is EncodingJSON (default) or EncodingText.
	Encoding string

	// Format is the line template used by EncodingText. Placeholders:
	// {time}, {name}, {level}, {message}.
	Format string

	// Outputs lists sinks: "stdout", "stderr" or a file path.
	// An empty list means stdout.
	Outputs []string
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
	zerolog.TimestampFieldName = "timestamp"
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "probe").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a "timestamp" field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format. It is used as the bootstrap
// logger before the configuration is known.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// New builds a *Logger from opts. Sinks listed in opts.Outputs are combined
// with zerolog.MultiLevelWriter, so every entry reaches every sink. File sinks
// are opened in append mode and released by [Logger.Close].
func New(role string, opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	writers, closers, err := openSinks(opts.Outputs)
	if err != nil {
		return nil, err
	}

	var out io.Writer = writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	switch strings.ToLower(opts.Encoding) {
	case "", EncodingJSON:
	case EncodingText:
		out = newTemplateWriter(out, opts.Format)
	default:
		closeAll(closers)
		return nil, ErrUnknownEncoding
	}

	logger := zerolog.New(out).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger, closers: closers}, nil
}

// ParseLevel maps a configured level name to a zerolog level.
// WARNING and WARN are both accepted. An empty string means INFO.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "", "INFO":
		return zerolog.InfoLevel, nil
	case "WARNING", "WARN":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, ErrUnknownLevel
	}
}

// Close releases file sinks opened by New. It is safe to call on any logger.
func (l *Logger) Close() error {
	err := closeAll(l.closers)
	l.closers = nil
	return err
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns a disabled logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

func openSinks(outputs []string) ([]io.Writer, []io.Closer, error) {
	var (
		writers []io.Writer
		closers []io.Closer
	)

	for _, output := range outputs {
		output = strings.TrimSpace(output)
		switch strings.ToLower(output) {
		case "":
			continue
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				closeAll(closers)
				return nil, nil, errors.Join(ErrOpenSink, err)
			}
			writers = append(writers, f)
			closers = append(closers, f)
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	return writers, closers, nil
}

func closeAll(closers []io.Closer) error {
	var err error
	for _, c := range closers {
		err = errors.Join(err, c.Close())
	}
	return err
}
