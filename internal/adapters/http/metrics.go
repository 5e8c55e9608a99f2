package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus instruments for one server instance. Each
// handler gets its own registry so tests can spin up servers without
// tripping duplicate-registration panics on the global one.
type metrics struct {
	registry        *prometheus.Registry
	checksTotal     *prometheus.CounterVec
	matchesTotal    *prometheus.CounterVec
	checkViolations prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typeguard_checks_total",
				Help: "Structural checks served, by outcome.",
			},
			[]string{"outcome"},
		),
		matchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typeguard_matches_total",
				Help: "Single-value match requests served, by outcome.",
			},
			[]string{"outcome"},
		),
		checkViolations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "typeguard_check_violations",
				Help:    "Violations found per structural check.",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
			},
		),
	}

	m.registry.MustRegister(m.checksTotal, m.matchesTotal, m.checkViolations)
	return m
}

func outcome(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
