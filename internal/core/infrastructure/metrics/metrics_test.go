package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	metricsiface "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/metrics"
)

// fakeReporter 固定统计值
type fakeReporter struct {
	name  string
	stats metricsiface.CacheStats
}

func (f *fakeReporter) CacheName() string                          { return f.name }
func (f *fakeReporter) CollectCacheStats() metricsiface.CacheStats { return f.stats }

// metricValue 按名称与 cache 标签取值
func metricValue(t *testing.T, families []*dto.MetricFamily, name, cache string) (float64, bool) {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() != "cache" || label.GetValue() != cache {
					continue
				}
				if m.GetGauge() != nil {
					return m.GetGauge().GetValue(), true
				}
				return m.GetCounter().GetValue(), true
			}
		}
	}
	return 0, false
}

func TestCacheCollector(t *testing.T) {
	reporter := &fakeReporter{name: "decode", stats: metricsiface.CacheStats{
		Cache: "decode", Entries: 3, Hits: 10, Misses: 4, Collisions: 1, DelHits: 2,
	}}

	collector := NewCacheCollector()
	require.NoError(t, collector.Add(reporter))
	require.NoError(t, collector.Add(nil))
	assert.Equal(t, 1, collector.Len())

	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(collector))

	families, err := registry.Gather()
	require.NoError(t, err)

	expected := map[string]float64{
		"keyaddr_cache_entries":             3,
		"keyaddr_cache_hits_total":          10,
		"keyaddr_cache_misses_total":        4,
		"keyaddr_cache_collisions_total":    1,
		"keyaddr_cache_delete_hits_total":   2,
		"keyaddr_cache_delete_misses_total": 0,
	}
	for name, want := range expected {
		got, ok := metricValue(t, families, name, "decode")
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	// 每次抓取读取最新快照
	reporter.stats.Entries = 7
	families, err = registry.Gather()
	require.NoError(t, err)
	got, _ := metricValue(t, families, "keyaddr_cache_entries", "decode")
	assert.Equal(t, float64(7), got)
}

func TestCacheCollectorRejectsBadReporters(t *testing.T) {
	collector := NewCacheCollector()
	require.NoError(t, collector.Add(&fakeReporter{name: "a"}))
	assert.Error(t, collector.Add(&fakeReporter{name: "a"}))
	assert.Error(t, collector.Add(&fakeReporter{name: ""}))
	assert.Equal(t, 1, collector.Len())
}

func TestNewRegistryIncludesRuntimeMetrics(t *testing.T) {
	families, err := NewRegistry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}

func TestModule(t *testing.T) {
	var (
		gatherer  prometheus.Gatherer
		collector *CacheCollector
	)

	app := fxtest.New(t,
		fx.NopLogger,
		fx.Provide(fx.Annotate(
			func() metricsiface.CacheReporter {
				return &fakeReporter{name: "decode", stats: metricsiface.CacheStats{Entries: 5}}
			},
			fx.ResultTags(`group:"cache_reporters"`),
		)),
		Module(),
		fx.Populate(&gatherer, &collector),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, 1, collector.Len())

	families, err := gatherer.Gather()
	require.NoError(t, err)
	got, ok := metricValue(t, families, "keyaddr_cache_entries", "decode")
	require.True(t, ok)
	assert.Equal(t, float64(5), got)
}

func TestModuleWithoutReporters(t *testing.T) {
	var collector *CacheCollector

	app := fxtest.New(t, fx.NopLogger, Module(), fx.Populate(&collector))
	app.RequireStart()
	defer app.RequireStop()

	assert.Zero(t, collector.Len())
}
