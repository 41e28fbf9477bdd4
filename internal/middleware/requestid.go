package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/villafrance/frontend/internal/logger"
)

const requestIdHeader = "X-Request-Id"

// RequestLogging tags every request with an id and logs its outcome.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)

		start := time.Now()
		wrapped := newStatusWriter(w)
		next.ServeHTTP(wrapped, r)

		logger.Log.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
		)
	})
}
