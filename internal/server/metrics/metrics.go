// Package metrics instruments the relay with Prometheus collectors and
// serves them on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ragrelay"

// Metrics owns a private registry so several instances (tests, embedded
// servers) never collide on the global one.
type Metrics struct {
	registry           *prometheus.Registry
	calls              *prometheus.CounterVec
	downstreamDuration *prometheus.HistogramVec
	downstreamInFlight prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls_total",
				Help:      "Relay calls by RPC method and reply outcome.",
			},
			[]string{"method", "outcome"},
		),
		downstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "downstream_request_duration_seconds",
				Help:      "Latency of HTTP requests to the downstream API.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
		downstreamInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "downstream_in_flight",
				Help:      "Downstream HTTP requests currently in flight.",
			},
		),
	}

	m.registry.MustRegister(
		m.calls,
		m.downstreamDuration,
		m.downstreamInFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCall counts one finished relay call.
func (m *Metrics) ObserveCall(method, outcome string) {
	m.calls.WithLabelValues(method, outcome).Inc()
}

// InstrumentTransport wraps next so every downstream request is timed and
// counted while in flight. A nil next means http.DefaultTransport.
func (m *Metrics) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperInFlight(m.downstreamInFlight,
		promhttp.InstrumentRoundTripperDuration(m.downstreamDuration, next))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
