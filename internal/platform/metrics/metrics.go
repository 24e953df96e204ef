// Package metrics collects Prometheus metrics for HTTP traffic, sign-ins and
// bookmark operations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the application metrics registered on a Registerer.
type Collector struct {
	requestsTotal *prometheus.CounterVec
	reqDuration   *prometheus.HistogramVec
	inFlight      prometheus.Gauge
	signIns       *prometheus.CounterVec
	bookmarkOps   *prometheus.CounterVec
}

// NewCollector creates the collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nda_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nda_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nda_http_in_flight_requests",
			Help: "Requests currently being served.",
		}),
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nda_sign_ins_total",
			Help: "Sign-in attempts by provider and outcome.",
		}, []string{"provider", "outcome"}),
		bookmarkOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nda_bookmark_operations_total",
			Help: "Bookmark operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.reqDuration,
		c.inFlight,
		c.signIns,
		c.bookmarkOps,
	)

	return c
}

// RequestStarted marks a request as in flight.
func (c *Collector) RequestStarted() {
	c.inFlight.Inc()
}

// RequestFinished records a completed request.
func (c *Collector) RequestFinished(route, method string, status int, latency time.Duration) {
	c.inFlight.Dec()
	c.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.reqDuration.WithLabelValues(route, method).Observe(latency.Seconds())
}

// RecordSignIn counts a sign-in attempt.
func (c *Collector) RecordSignIn(provider, outcome string) {
	c.signIns.WithLabelValues(provider, outcome).Inc()
}

// RecordBookmarkOperation counts a bookmark list/create/delete.
func (c *Collector) RecordBookmarkOperation(operation, outcome string) {
	c.bookmarkOps.WithLabelValues(operation, outcome).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
