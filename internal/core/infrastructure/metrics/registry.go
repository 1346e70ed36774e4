// Package metrics 提供 Prometheus 指标注册表与缓存统计采集
//
// 📋 **指标基础设施模块 (Metrics Infrastructure Module)**
//
// 本模块提供：
// - Registry: 进程内唯一的指标注册表（含 Go 运行时与进程指标）
// - CacheCollector: 把 CacheReporter 的统计快照导出为指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry 创建带运行时指标的注册表
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}
