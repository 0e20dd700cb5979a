// internal/middleware/accesslog.go
//
// One structured log line per request plus a status-class counter.  Runs
// after chi's RequestID so the id is available.

package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/yanizio/frontdoor/internal/metrics"
)

// AccessLog logs method, path, status, bytes, and duration through zap.L().
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(statusClass(status)).Inc()

		zap.L().Info("http request",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// statusClass maps 404 → "4xx".
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
