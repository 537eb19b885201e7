package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-greeter/internal/logger"
)

// accessLogType tags access log entries so they can be told apart from
// application logs.
const accessLogType = "access_log"

// withLogging emits one access log entry per request: a human-readable
// summary at Info level and, when Debug is enabled, a structured duplicate
// with the individual request fields.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.Status()

		log.Info().
			Str("type", accessLogType).
			Msgf("%q %d %d", method+" "+uri+" "+r.Proto, status, lw.size)

		log.Debug().
			Str("type", accessLogType).
			Str("method", method).
			Str("path", r.URL.Path).
			Str("uri", uri).
			Str("proto", r.Proto).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Msg("request handled")
	})
}
