// Package metrics 定义缓存类组件的统计上报接口
//
// 实现在各自的基础设施模块中（例如 storage/memory），
// 由 internal/core/infrastructure/metrics 汇总导出为 Prometheus 指标。
package metrics

// CacheStats 缓存在某一时刻的统计快照
//
// 计数器类字段从缓存创建起单调递增。
type CacheStats struct {
	Cache      string `json:"cache"`      // 缓存名称
	Entries    int64  `json:"entries"`    // 当前条目数
	Hits       int64  `json:"hits"`       // 命中次数
	Misses     int64  `json:"misses"`     // 未命中次数
	Collisions int64  `json:"collisions"` // 键哈希冲突次数
	DelHits    int64  `json:"del_hits"`   // 删除命中次数
	DelMisses  int64  `json:"del_misses"` // 删除未命中次数
}

// CacheReporter 缓存统计上报接口
type CacheReporter interface {
	// CacheName 返回缓存名称（用作指标标签）
	CacheName() string

	// CollectCacheStats 返回当前统计快照，必须并发安全
	CollectCacheStats() CacheStats
}
