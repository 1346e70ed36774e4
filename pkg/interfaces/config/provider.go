// Package config provides configuration provider interfaces.
package config

import (
	addressconfig "github.com/weisyn/keyaddr/internal/config/address"
	apiconfig "github.com/weisyn/keyaddr/internal/config/api"
	batchconfig "github.com/weisyn/keyaddr/internal/config/batch"
	logconfig "github.com/weisyn/keyaddr/internal/config/log"
)

// Provider 配置提供者接口
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetAddress 获取地址推导配置
	GetAddress() *addressconfig.AddressOptions

	// GetAPI 获取HTTP API配置
	GetAPI() *apiconfig.APIOptions

	// GetBatch 获取批量推导配置
	GetBatch() *batchconfig.BatchOptions
}
