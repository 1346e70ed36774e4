package config

import (
	"github.com/weisyn/keyaddr/internal/config/address"
	"github.com/weisyn/keyaddr/internal/config/api"
	"github.com/weisyn/keyaddr/internal/config/batch"
	"github.com/weisyn/keyaddr/internal/config/log"
	"github.com/weisyn/keyaddr/pkg/interfaces/config"
	"github.com/weisyn/keyaddr/pkg/types"
)

// Provider 实现配置提供者接口
//
// 每个 GetXxx 都是 默认值 → 用户配置覆盖，不缓存结果。
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	return &Provider{
		appConfig: appConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	var userLogConfig *types.UserLogConfig
	if p.appConfig != nil {
		userLogConfig = p.appConfig.Log
	}
	return log.New(userLogConfig).GetOptions()
}

// GetAddress 获取地址推导配置
func (p *Provider) GetAddress() *address.AddressOptions {
	var userAddressConfig *types.UserAddressConfig
	if p.appConfig != nil {
		userAddressConfig = p.appConfig.Address
	}
	return address.New(userAddressConfig).GetOptions()
}

// GetAPI 获取HTTP API配置
func (p *Provider) GetAPI() *api.APIOptions {
	var userAPIConfig *types.UserAPIConfig
	if p.appConfig != nil {
		userAPIConfig = p.appConfig.API
	}
	return api.New(userAPIConfig).GetOptions()
}

// GetBatch 获取批量推导配置
func (p *Provider) GetBatch() *batch.BatchOptions {
	var userBatchConfig *types.UserBatchConfig
	if p.appConfig != nil {
		userBatchConfig = p.appConfig.Batch
	}
	return batch.New(userBatchConfig).GetOptions()
}
