// Package metrics exposes Prometheus instruments for the checkout service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "checkout"

// Redirect kinds
const (
	KindInitial = "initial"
	KindRetry   = "retry"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPServerDuration *prometheus.HistogramVec
	RedirectsBuilt     *prometheus.CounterVec
	RedirectFailures   *prometheus.CounterVec
	RetriesRejected    prometheus.Counter
	UnsupportedOps     *prometheus.CounterVec
}

// New registers every instrument on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPServerDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP server request duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RedirectsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirects_built_total",
			Help:      "Signed redirect requests handed to customers.",
		}, []string{"kind"}),
		RedirectFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirect_failures_total",
			Help:      "Redirect requests that could not be built, by error code.",
		}, []string{"code"}),
		RetriesRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retries_rejected_total",
			Help:      "Payment retries refused by the retry policy.",
		}),
		UnsupportedOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unsupported_operations_total",
			Help:      "Calls to payment operations the gateway does not offer.",
		}, []string{"operation"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPServerDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RedirectBuilt(kind string) {
	if m == nil {
		return
	}
	m.RedirectsBuilt.WithLabelValues(kind).Inc()
}

func (m *Metrics) RedirectFailed(code string) {
	if m == nil {
		return
	}
	m.RedirectFailures.WithLabelValues(code).Inc()
}

func (m *Metrics) RetryRejected() {
	if m == nil {
		return
	}
	m.RetriesRejected.Inc()
}

func (m *Metrics) UnsupportedOperation(op string) {
	if m == nil {
		return
	}
	m.UnsupportedOps.WithLabelValues(op).Inc()
}
