package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log row per request. Server errors are
// logged at error level, client errors at warn, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method
		bytesIn := r.ContentLength

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.WithLevel(accessLogLevel(lw.status)).
			Str("uri", uri).
			Str("method", method).
			Int64("bytes_in", bytesIn).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
