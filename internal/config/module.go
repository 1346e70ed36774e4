// Package config 提供应用配置管理功能
package config

import (
	"github.com/weisyn/keyaddr/internal/config/address"
	"github.com/weisyn/keyaddr/internal/config/api"
	"github.com/weisyn/keyaddr/internal/config/batch"
	"github.com/weisyn/keyaddr/pkg/interfaces/config"
	"github.com/weisyn/keyaddr/pkg/types"
	"go.uber.org/fx"
)

// ConfigParams 定义配置模块的依赖参数
type ConfigParams struct {
	fx.In

	// 应用配置选项
	AppOptions config.AppOptions `optional:"true"`
}

// ConfigOutput 定义配置模块的输出结构
type ConfigOutput struct {
	fx.Out

	// 配置提供者
	Provider config.Provider
}

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			ProvideConfigServices,
			// 提供具体的配置类型用于依赖注入
			func(provider config.Provider) *address.AddressOptions {
				return provider.GetAddress()
			},
			func(provider config.Provider) *api.APIOptions {
				return provider.GetAPI()
			},
			func(provider config.Provider) *batch.BatchOptions {
				return provider.GetBatch()
			},
		),
	)
}

// ProvideConfigServices 提供配置服务
func ProvideConfigServices(params ConfigParams) (ConfigOutput, error) {
	var appConfig *types.AppConfig
	if params.AppOptions != nil {
		appConfig = params.AppOptions.GetAppConfig()
	}

	return ConfigOutput{
		Provider: NewProvider(appConfig),
	}, nil
}
