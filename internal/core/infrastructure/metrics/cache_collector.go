package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	metricsiface "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/metrics"
)

// 指标名前缀
const namespace = "keyaddr"

// CacheCollector 采集已注册缓存的统计快照
//
// 每次抓取时调用 CollectCacheStats，不缓存旧值。
type CacheCollector struct {
	mu        sync.RWMutex
	reporters map[string]metricsiface.CacheReporter

	entries    *prometheus.Desc
	hits       *prometheus.Desc
	misses     *prometheus.Desc
	collisions *prometheus.Desc
	delHits    *prometheus.Desc
	delMisses  *prometheus.Desc
}

// NewCacheCollector 创建缓存采集器
func NewCacheCollector() *CacheCollector {
	labels := []string{"cache"}
	return &CacheCollector{
		reporters: make(map[string]metricsiface.CacheReporter),
		entries: prometheus.NewDesc(namespace+"_cache_entries",
			"缓存当前条目数", labels, nil),
		hits: prometheus.NewDesc(namespace+"_cache_hits_total",
			"缓存命中次数", labels, nil),
		misses: prometheus.NewDesc(namespace+"_cache_misses_total",
			"缓存未命中次数", labels, nil),
		collisions: prometheus.NewDesc(namespace+"_cache_collisions_total",
			"缓存键哈希冲突次数", labels, nil),
		delHits: prometheus.NewDesc(namespace+"_cache_delete_hits_total",
			"缓存删除命中次数", labels, nil),
		delMisses: prometheus.NewDesc(namespace+"_cache_delete_misses_total",
			"缓存删除未命中次数", labels, nil),
	}
}

// Add 注册一个缓存；nil 忽略，名称重复返回错误
func (c *CacheCollector) Add(reporter metricsiface.CacheReporter) error {
	if reporter == nil {
		return nil
	}
	name := reporter.CacheName()
	if name == "" {
		return fmt.Errorf("缓存名称不能为空")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.reporters[name]; exists {
		return fmt.Errorf("缓存 %q 已注册", name)
	}
	c.reporters[name] = reporter
	return nil
}

// Len 已注册缓存数
func (c *CacheCollector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.reporters)
}

// Describe 实现 prometheus.Collector
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.hits
	ch <- c.misses
	ch <- c.collisions
	ch <- c.delHits
	ch <- c.delMisses
}

// Collect 实现 prometheus.Collector
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	reporters := make([]metricsiface.CacheReporter, 0, len(c.reporters))
	for _, reporter := range c.reporters {
		reporters = append(reporters, reporter)
	}
	c.mu.RUnlock()

	for _, reporter := range reporters {
		stats := reporter.CollectCacheStats()
		name := reporter.CacheName()
		ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries), name)
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.collisions, prometheus.CounterValue, float64(stats.Collisions), name)
		ch <- prometheus.MustNewConstMetric(c.delHits, prometheus.CounterValue, float64(stats.DelHits), name)
		ch <- prometheus.MustNewConstMetric(c.delMisses, prometheus.CounterValue, float64(stats.DelMisses), name)
	}
}
