// Package batch 提供批量推导配置
package batch

import (
	"runtime"

	"github.com/weisyn/keyaddr/pkg/types"
)

// BatchOptions 批量推导配置选项
type BatchOptions struct {
	Workers int `json:"workers"` // 最终生效的并发数（≥1）
}

// Config 批量配置实现
type Config struct {
	options *BatchOptions
}

// New 创建批量配置实现
func New(userConfig *types.UserBatchConfig) *Config {
	workers := defaultWorkers
	if userConfig != nil && userConfig.Workers != nil {
		workers = *userConfig.Workers
	}
	return &Config{options: &BatchOptions{Workers: ResolveWorkers(workers)}}
}

// ResolveWorkers 将用户给出的并发数规整到 [1, maxWorkers]，≤0 取 CPU 数
func ResolveWorkers(n int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// GetOptions 获取完整的批量配置选项
func (c *Config) GetOptions() *BatchOptions {
	return c.options
}
