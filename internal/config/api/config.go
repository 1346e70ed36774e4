package api

import (
	"time"

	"github.com/weisyn/keyaddr/pkg/types"
)

// APIOptions HTTP API配置选项
type APIOptions struct {
	Listen        string `json:"listen"`         // 监听地址
	EnableMetrics bool   `json:"enable_metrics"` // 是否暴露 /metrics

	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	MaxRequestSize  int64         `json:"max_request_size"`
}

// Config API配置实现
type Config struct {
	options *APIOptions
}

// New 创建API配置实现
func New(userConfig *types.UserAPIConfig) *Config {
	options := &APIOptions{
		Listen:          defaultListen,
		EnableMetrics:   defaultEnableMetrics,
		ReadTimeout:     defaultReadTimeout,
		WriteTimeout:    defaultWriteTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
		MaxRequestSize:  defaultMaxRequestSize,
	}

	if userConfig != nil {
		if userConfig.Listen != nil && *userConfig.Listen != "" {
			options.Listen = *userConfig.Listen
		}
		if userConfig.EnableMetrics != nil {
			options.EnableMetrics = *userConfig.EnableMetrics
		}
	}

	return &Config{options: options}
}

// GetOptions 获取完整的API配置选项
func (c *Config) GetOptions() *APIOptions {
	return c.options
}
