package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegistry(t *testing.T) {
	registry := NewMetricsRegistry()

	require.NotNil(t, registry)
	require.NotNil(t, registry.PrometheusRegistry())
	require.NotNil(t, registry.CoreMetrics())

	// Core metrics must be gatherable without any observations
	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families, "go runtime collectors should report immediately")
}

func TestCoreMetrics_Observed(t *testing.T) {
	registry := NewMetricsRegistry()
	core := registry.CoreMetrics()

	core.DeclarationsTotal.WithLabelValues("Physics", "action").Inc()
	core.DeclarationsTotal.WithLabelValues("Physics", "action").Inc()
	core.LookupMissesTotal.WithLabelValues("Physics", "condition").Inc()
	core.StrippedTotal.WithLabelValues("Physics").Add(3)
	core.ExtensionsLoaded.Set(2)
	core.LoadErrorsTotal.WithLabelValues("Physics").Inc()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[family.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[family.GetName()] += m.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, float64(2), values["platform_extensions_declarations_total"])
	assert.Equal(t, float64(1), values["platform_extensions_lookup_misses_total"])
	assert.Equal(t, float64(3), values["platform_extensions_stripped_total"])
	assert.Equal(t, float64(2), values["platform_loader_extensions_loaded"])
	assert.Equal(t, float64(1), values["platform_loader_errors_total"])
}

func TestRegisterCollector(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "custom_tool_operations_total",
		Help: "Test counter",
	})

	err := registry.RegisterCollector("custom", "operations", counter)
	require.NoError(t, err)

	counter.Add(5)

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	found := false
	for _, family := range families {
		if family.GetName() == "custom_tool_operations_total" {
			found = true
			assert.Equal(t, float64(5), family.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found, "registered collector should appear in gather output")
}

func TestRegisterCollector_DuplicateKey(t *testing.T) {
	registry := NewMetricsRegistry()

	first := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total", Help: "x"})
	second := prometheus.NewCounter(prometheus.CounterOpts{Name: "other_total", Help: "x"})

	require.NoError(t, registry.RegisterCollector("tool", "metric", first))

	err := registry.RegisterCollector("tool", "metric", second)
	assert.Error(t, err, "same tool.metric key should be rejected")
}

func TestRegisterCollector_SameCollectorNewKey(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "shared_total", Help: "x"})

	require.NoError(t, registry.RegisterCollector("toolA", "shared", counter))

	// Registering the identical collector under a second key reuses it
	err := registry.RegisterCollector("toolB", "shared", counter)
	assert.NoError(t, err)
}

func TestUnregister(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "removable_total", Help: "x"})
	require.NoError(t, registry.RegisterCollector("tool", "removable", counter))

	assert.True(t, registry.Unregister("tool", "removable"))
	assert.False(t, registry.Unregister("tool", "removable"), "second unregister should report not found")
	assert.False(t, registry.Unregister("tool", "never-registered"))
}

func TestHandler(t *testing.T) {
	registry := NewMetricsRegistry()
	registry.CoreMetrics().ExtensionsLoaded.Set(4)

	server := httptest.NewServer(registry.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
}
