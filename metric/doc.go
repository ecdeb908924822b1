// Package metric provides Prometheus instrumentation for the extension
// registry core.
//
// A MetricsRegistry owns a private prometheus.Registry preloaded with the
// platform's core metrics: declaration counts per extension and kind, lookup
// misses (sentinel resolutions), records removed by the strip pass, and
// load-phase totals. Go runtime and process collectors are included.
//
// Instrumentation is opt-in: an extension created without
// extension.WithMetrics records nothing, and the zero cost of that path is
// a nil check. The loader accepts the same registry so declaration and
// load-phase metrics land in one place:
//
//	metrics := metric.NewMetricsRegistry()
//	ext := extension.New(extension.WithMetrics(metrics))
//	...
//	http.Handle("/metrics", metrics.Handler())
//
// Additional collectors can be attached with RegisterCollector, keyed by tool
// and metric name so different tools cannot silently collide.
package metric
