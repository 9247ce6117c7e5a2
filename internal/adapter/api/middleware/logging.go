package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
)

// responseWriter is a wrapper that captures the HTTP status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging is a middleware factory that logs each request and records the
// request metrics. The metrics handle is optional.
func Logging(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			route := r.Pattern
			if route == "" {
				route = r.URL.Path
			}

			if m != nil {
				m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
				m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())
			}

			logger.Info("handled request",
				"method", r.Method,
				"route", route,
				"remote_addr", r.RemoteAddr,
				"status", rw.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}
