package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	logimpl "github.com/weisyn/keyaddr/internal/core/infrastructure/log"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
	metricsiface "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/metrics"
)

// RegistryOutput 指标注册表
//
// 同一个 Registry 同时作为 Registerer（流水线与中间件注册）和 Gatherer（/metrics 导出）。
type RegistryOutput struct {
	fx.Out

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// ProvideRegistry 提供注册表
func ProvideRegistry() RegistryOutput {
	registry := NewRegistry()
	return RegistryOutput{Registerer: registry, Gatherer: registry}
}

// CollectorParams 缓存采集器依赖
type CollectorParams struct {
	fx.In

	Registerer prometheus.Registerer
	Logger     log.Logger                   `optional:"true"`
	Reporters  []metricsiface.CacheReporter `group:"cache_reporters"`
}

// RegisterCacheCollector 汇总 cache_reporters 组并注册采集器
func RegisterCacheCollector(params CollectorParams) (*CacheCollector, error) {
	collector := NewCacheCollector()
	for _, reporter := range params.Reporters {
		if err := collector.Add(reporter); err != nil {
			return nil, err
		}
	}
	if err := params.Registerer.Register(collector); err != nil {
		return nil, fmt.Errorf("注册缓存指标失败: %w", err)
	}

	if logger := logimpl.NewModuleLogger(params.Logger, "metrics"); logger != nil {
		logger.Debugf("缓存指标已注册: caches=%d", collector.Len())
	}
	return collector, nil
}

// Module 返回 metrics 模块
//
// 提供：
// - prometheus.Registerer / prometheus.Gatherer
// - *CacheCollector
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(ProvideRegistry),
		fx.Provide(RegisterCacheCollector),
		// 确保采集器在无人依赖时也完成注册
		fx.Invoke(func(*CacheCollector) {}),
	)
}
