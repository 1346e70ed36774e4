package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 失败原因标签
const (
	reasonEntropy         = "entropy"
	reasonInvalidSecret   = "invalid_secret"
	reasonInvalidMnemonic = "invalid_mnemonic"
	reasonInvalidScalar   = "invalid_scalar"
	reasonDeriver         = "deriver"
	reasonCanceled        = "canceled"
)

// Metrics 推导流水线指标
type Metrics struct {
	derivations   *prometheus.CounterVec
	failures      *prometheus.CounterVec
	batchDuration prometheus.Histogram
	batchSize     prometheus.Histogram
}

// NewMetrics 创建流水线指标
//
// registerer 为 nil 时指标照常计数但不注册到任何 Registry。
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		derivations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "keyaddr",
				Subsystem: "pipeline",
				Name:      "derivations_total",
				Help:      "Total number of successful secret to address derivations",
			},
			[]string{"deriver"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "keyaddr",
				Subsystem: "pipeline",
				Name:      "derive_failures_total",
				Help:      "Total number of failed derivations by reason",
			},
			[]string{"reason"},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "keyaddr",
				Subsystem: "pipeline",
				Name:      "batch_duration_seconds",
				Help:      "Batch derivation duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
		),
		batchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "keyaddr",
				Subsystem: "pipeline",
				Name:      "batch_size",
				Help:      "Number of secrets per batch",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

func (m *Metrics) observeDerivation(deriver string) {
	if m == nil {
		return
	}
	m.derivations.WithLabelValues(deriver).Inc()
}

func (m *Metrics) observeFailure(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}

func (m *Metrics) observeBatch(size int, seconds float64) {
	if m == nil {
		return
	}
	m.batchSize.Observe(float64(size))
	m.batchDuration.Observe(seconds)
}
