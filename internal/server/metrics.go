package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.HistogramVec
	rows     *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mockdata",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mockdata",
			Name:      "rows_generated_total",
			Help:      "Rows generated over HTTP by output format.",
		}, []string{"format"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mockdata",
			Name:      "generate_errors_total",
			Help:      "Rejected or failed generation requests by reason.",
		}, []string{"reason"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.rows,
		m.failures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
