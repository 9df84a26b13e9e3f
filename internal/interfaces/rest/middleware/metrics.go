package middleware

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/moneta-checkout/internal/metrics"
)

// Metrics records request count and latency per route. It must wrap the
// ServeMux directly so the matched pattern is visible after the call.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, rec.Status(), time.Since(start))
		})
	}
}
