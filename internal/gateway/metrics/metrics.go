// Package metrics collects and exposes Prometheus metrics for the gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records gateway metrics: login outcomes, identity resolution
// reasons, JSAPI config requests, upstream platform latency and HTTP
// response statuses.
type Collector struct {
	logins          *prometheus.CounterVec
	resolves        *prometheus.CounterVec
	jsapiConfigs    *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
	platformLatency prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wpsgate_logins_total",
			Help: "Login callback outcomes by result.",
		}, []string{"result"}),
		resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wpsgate_resolves_total",
			Help: "Identity resolution outcomes by reason (matched or denial reason).",
		}, []string{"reason"}),
		jsapiConfigs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wpsgate_jsapi_configs_total",
			Help: "JSAPI authorization config requests by outcome.",
		}, []string{"outcome"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wpsgate_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		platformLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wpsgate_platform_latency_seconds",
			Help:    "Latency of outbound platform call sequences in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.logins,
		c.resolves,
		c.jsapiConfigs,
		c.httpStatus,
		c.platformLatency,
	)

	return c
}

// RecordLogin records a login callback outcome ("matched", "denied",
// "upstream_error", "internal_error", "bad_request").
func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

// RecordResolve records an identity resolution outcome. reason is "matched"
// or the MatchResult reason.
func (c *Collector) RecordResolve(reason string) {
	c.resolves.WithLabelValues(reason).Inc()
}

// RecordJSAPIConfig records a JSAPI config request outcome.
func (c *Collector) RecordJSAPIConfig(outcome string) {
	c.jsapiConfigs.WithLabelValues(outcome).Inc()
}

// RecordHTTPStatus records an HTTP response status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordPlatformLatency records the wall time of an outbound platform call
// sequence.
func (c *Collector) RecordPlatformLatency(duration time.Duration) {
	c.platformLatency.Observe(duration.Seconds())
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
