package logger

import "errors"

var (
	// ErrUnknownLevel is returned by ParseLevel for names outside
	// DEBUG, INFO, WARNING and ERROR.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownEncoding is returned by New when Options.Encoding is neither
	// "json" nor "text".
	ErrUnknownEncoding = errors.New("unknown log encoding")
	// ErrOpenSink is joined with the underlying error when a file sink cannot
	// be opened.
	ErrOpenSink = errors.New("cannot open log sink")
)
