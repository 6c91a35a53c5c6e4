package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anvaya-crm/leaddesk/internal/metrics"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Metrics records request count, duration and in-flight connections for every
// route.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.IncActiveConnections()
		defer metrics.DecActiveConnections()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(rw.statusCode),
			time.Since(start).Seconds())
	})
}
