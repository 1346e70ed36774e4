// Package memory 提供基于BigCache的内存缓存实现
//
// 只用于缓存公开数据（例如已解码的地址）；Secret 及其派生的私密数据不得写入。
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	sysmem "github.com/pbnjay/memory"

	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/metrics"
)

// ErrClosed 缓存已关闭
var ErrClosed = errors.New("memory store closed")

// 默认值
const (
	defaultLifeWindow = 10 * time.Minute
	defaultShards     = 64
	defaultMaxEntries = 10000
	defaultEntrySize  = 64
	defaultName       = "memory"

	// 自适应上限：系统内存的 1/64，限制在 [minHardMaxMB, maxHardMaxMB]
	minHardMaxMB = 8
	maxHardMaxMB = 512
)

// Options BigCache 参数
type Options struct {
	Name         string        // 缓存名称（指标标签）
	LifeWindow   time.Duration // 条目存活时间
	CleanWindow  time.Duration // 过期清理间隔，0 表示 LifeWindow/2
	MaxEntries   int           // 预估窗口内最大条目数
	MaxEntrySize int           // 预估单条字节数
	Shards       int           // 分片数（2的幂）
	HardMaxMB    int           // 内存上限（MB），0 表示按系统内存自适应
}

// Store 基于BigCache的内存缓存
type Store struct {
	name   string
	cache  *bigcache.BigCache
	logger log.Logger
	mutex  sync.RWMutex
	closed bool
}

var _ metrics.CacheReporter = (*Store)(nil)

// New 创建一个新的BigCache内存存储实例
func New(opts Options, logger log.Logger) (*Store, error) {
	if opts.LifeWindow <= 0 {
		opts.LifeWindow = defaultLifeWindow
	}
	if opts.CleanWindow <= 0 {
		opts.CleanWindow = opts.LifeWindow / 2
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = defaultMaxEntries
	}
	if opts.MaxEntrySize <= 0 {
		opts.MaxEntrySize = defaultEntrySize
	}
	if opts.Shards <= 0 {
		opts.Shards = defaultShards
	}
	if opts.Name == "" {
		opts.Name = defaultName
	}
	if opts.HardMaxMB <= 0 {
		opts.HardMaxMB = adaptiveHardMaxMB(sysmem.TotalMemory())
	}

	bigCacheConfig := bigcache.DefaultConfig(opts.LifeWindow)
	bigCacheConfig.MaxEntriesInWindow = opts.MaxEntries
	bigCacheConfig.MaxEntrySize = opts.MaxEntrySize
	bigCacheConfig.Shards = opts.Shards
	bigCacheConfig.CleanWindow = opts.CleanWindow
	bigCacheConfig.HardMaxCacheSize = opts.HardMaxMB
	bigCacheConfig.StatsEnabled = true
	bigCacheConfig.Verbose = false

	cache, err := bigcache.New(context.Background(), bigCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("创建BigCache实例失败: %w", err)
	}

	if logger != nil {
		logger.Debugf("内存缓存已创建: name=%s life_window=%s max_entries=%d shards=%d hard_max_mb=%d",
			opts.Name, opts.LifeWindow, opts.MaxEntries, opts.Shards, opts.HardMaxMB)
	}

	return &Store{
		name:   opts.Name,
		cache:  cache,
		logger: logger,
	}, nil
}

// adaptiveHardMaxMB 由系统总内存（字节）推算缓存上限
//
// 无法获取系统内存时返回 0（不限制）。
func adaptiveHardMaxMB(totalBytes uint64) int {
	if totalBytes == 0 {
		return 0
	}
	mb := int(totalBytes / 64 / (1 << 20))
	if mb < minHardMaxMB {
		return minHardMaxMB
	}
	if mb > maxHardMaxMB {
		return maxHardMaxMB
	}
	return mb
}

// Get 获取缓存值，未命中返回 (nil, false, nil)
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return nil, false, ErrClosed
	}

	value, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("获取缓存键失败: %w", err)
	}
	return value, true, nil
}

// Set 写入缓存值
func (s *Store) Set(key string, value []byte) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return ErrClosed
	}

	if err := s.cache.Set(key, value); err != nil {
		return fmt.Errorf("写入缓存键失败: %w", err)
	}
	return nil
}

// Delete 删除缓存值，键不存在不视为错误
func (s *Store) Delete(key string) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return ErrClosed
	}

	if err := s.cache.Delete(key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return fmt.Errorf("删除缓存键失败: %w", err)
	}
	return nil
}

// Len 当前条目数
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return 0
	}
	return s.cache.Len()
}

// Stats 命中统计
func (s *Store) Stats() bigcache.Stats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.closed {
		return bigcache.Stats{}
	}
	return s.cache.Stats()
}

// CacheName 实现 metrics.CacheReporter
func (s *Store) CacheName() string {
	return s.name
}

// CollectCacheStats 实现 metrics.CacheReporter
func (s *Store) CollectCacheStats() metrics.CacheStats {
	stats := s.Stats()
	return metrics.CacheStats{
		Cache:      s.name,
		Entries:    int64(s.Len()),
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Collisions: stats.Collisions,
		DelHits:    stats.DelHits,
		DelMisses:  stats.DelMisses,
	}
}

// Close 关闭缓存并释放资源
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return nil
	}
	if err := s.cache.Close(); err != nil {
		return err
	}
	s.closed = true
	if s.logger != nil {
		s.logger.Debug("内存缓存已关闭")
	}
	return nil
}
