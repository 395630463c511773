package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fulfillment",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight API requests.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "API requests by route and status class.",
	}, []string{"method", "route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fulfillment",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request latencies in seconds.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "route"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fulfillment",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "API response body sizes.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 7),
	}, []string{"route"})
)

// untracked paths are scraped or polled by infrastructure.
var untracked = []string{"/metrics", "/healthz", "/swagger/"}

func tracked(path string) bool {
	for _, p := range untracked {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// statusClass folds a status code into 2xx, 4xx, etc.
func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}

// Metrics records request counts, latencies and sizes per chi route
// pattern, so /orders/{number} is one series regardless of the number.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tracked(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, statusClass(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(route).Observe(float64(rw.bytes))
	})
}
