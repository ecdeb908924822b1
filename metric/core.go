package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all platform-level metrics (not extension-specific)
type Metrics struct {
	// Registration metrics
	DeclarationsTotal *prometheus.CounterVec
	LookupMissesTotal *prometheus.CounterVec
	StrippedTotal     *prometheus.CounterVec

	// Loading metrics
	ExtensionsLoaded prometheus.Gauge
	LoadErrorsTotal  *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all platform metrics
func NewMetrics() *Metrics {
	return &Metrics{
		DeclarationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "platform",
				Subsystem: "extensions",
				Name:      "declarations_total",
				Help:      "Total number of metadata declarations accepted",
			},
			[]string{"extension", "kind"},
		),

		LookupMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "platform",
				Subsystem: "extensions",
				Name:      "lookup_misses_total",
				Help:      "Total number of lookups resolved to a sentinel record",
			},
			[]string{"extension", "kind"},
		),

		StrippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "platform",
				Subsystem: "extensions",
				Name:      "stripped_total",
				Help:      "Total number of unimplemented instructions and expressions removed",
			},
			[]string{"extension"},
		),

		ExtensionsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "platform",
				Subsystem: "loader",
				Name:      "extensions_loaded",
				Help:      "Number of extensions registered during the load phase",
			},
		),

		LoadErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "platform",
				Subsystem: "loader",
				Name:      "errors_total",
				Help:      "Total number of errors recorded during the load phase",
			},
			[]string{"extension"},
		),
	}
}
