package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultFormat is the line template used by the text encoding when none is
// configured. The printf-style tokens %(asctime)s, %(name)s, %(levelname)s
// and %(message)s are accepted as aliases of the braced placeholders.
const DefaultFormat = "{time} - {name} - {level} - {message}"

// templateWriter renders zerolog JSON events as single text lines following a
// template. Fields not referenced by the template are appended as key=value
// pairs in lexical order.
type templateWriter struct {
	out      io.Writer
	format   string
	replacer func(evt map[string]any) *strings.Replacer
}

func newTemplateWriter(out io.Writer, format string) *templateWriter {
	if format == "" {
		format = DefaultFormat
	}

	return &templateWriter{
		out:    out,
		format: format,
		replacer: func(evt map[string]any) *strings.Replacer {
			ts := stringField(evt, zerolog.TimestampFieldName)
			name := stringField(evt, "role")
			level := levelName(stringField(evt, zerolog.LevelFieldName))
			msg := stringField(evt, zerolog.MessageFieldName)

			return strings.NewReplacer(
				"{time}", ts,
				"{name}", name,
				"{level}", level,
				"{message}", msg,
				"%(asctime)s", ts,
				"%(name)s", name,
				"%(levelname)s", level,
				"%(message)s", msg,
			)
		},
	}
}

func (w *templateWriter) Write(p []byte) (int, error) {
	evt := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(p))
	decoder.UseNumber()
	if err := decoder.Decode(&evt); err != nil {
		return 0, fmt.Errorf("error decoding log event: %w", err)
	}

	var line strings.Builder
	line.WriteString(w.replacer(evt).Replace(w.format))

	extra := make([]string, 0, len(evt))
	for key := range evt {
		switch key {
		case zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName, "role":
			continue
		}
		extra = append(extra, key)
	}
	sort.Strings(extra)

	for _, key := range extra {
		line.WriteByte(' ')
		line.WriteString(key)
		line.WriteByte('=')
		line.WriteString(stringField(evt, key))
	}
	line.WriteByte('\n')

	if _, err := io.WriteString(w.out, line.String()); err != nil {
		return 0, err
	}

	return len(p), nil
}

func stringField(evt map[string]any, key string) string {
	v, ok := evt[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// levelName turns zerolog level names into the names used in configuration.
func levelName(level string) string {
	if level == zerolog.LevelWarnValue {
		return "WARNING"
	}
	return strings.ToUpper(level)
}
