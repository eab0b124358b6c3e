package middleware

import (
	"net/http"
	"time"

	"zookeepr/pkg/observability"

	"github.com/go-chi/chi/v5/middleware"
)

// Metrics records request counts and latency labelled by the matched
// route pattern, so ids in the path do not create new series
func Metrics(collector *observability.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			collector.ObserveHTTP(r.Method, routePattern(r), ww.Status(), time.Since(start))
		})
	}
}
