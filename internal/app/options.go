package app

import (
	"io"

	"github.com/weisyn/keyaddr/pkg/interfaces/config"
	"github.com/weisyn/keyaddr/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 配置文件路径
	configFilePath string

	// 嵌入的配置内容（configFilePath 为空时使用）
	embeddedConfig []byte

	// 直接给定的用户配置（优先级最高，跳过文件加载）
	appConfig *types.AppConfig

	// 加载完成后依次应用的覆盖项（命令行标志）
	overrides []func(*types.AppConfig)

	// 熵源（测试中注入确定性读取器）
	entropy io.Reader

	// API支持开关（默认禁用，serve 命令启用）
	enableAPI bool
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithEmbeddedConfig 设置嵌入的配置内容
// 未指定配置文件时使用，无需在磁盘上放置配置
func WithEmbeddedConfig(configBytes []byte) Option {
	return func(o *options) {
		o.embeddedConfig = configBytes
	}
}

// WithAppConfig 直接使用已构造的配置，不再读取文件
func WithAppConfig(appConfig *types.AppConfig) Option {
	return func(o *options) {
		o.appConfig = appConfig
	}
}

// WithOverride 追加一个配置覆盖函数
func WithOverride(override func(*types.AppConfig)) Option {
	return func(o *options) {
		if override != nil {
			o.overrides = append(o.overrides, override)
		}
	}
}

// WithAddress 覆盖地址推导配置中显式设置的字段
func WithAddress(userAddressConfig *types.UserAddressConfig) Option {
	return WithOverride(func(cfg *types.AppConfig) {
		if userAddressConfig == nil {
			return
		}
		if cfg.Address == nil {
			cfg.Address = &types.UserAddressConfig{}
		}
		if userAddressConfig.Network != nil {
			cfg.Address.Network = userAddressConfig.Network
		}
		if userAddressConfig.VersionByte != nil {
			cfg.Address.VersionByte = userAddressConfig.VersionByte
		}
		if userAddressConfig.KeyDerivation != nil {
			cfg.Address.KeyDerivation = userAddressConfig.KeyDerivation
		}
		if userAddressConfig.Cache != nil {
			cfg.Address.Cache = userAddressConfig.Cache
		}
	})
}

// WithListen 覆盖HTTP监听地址
func WithListen(listen string) Option {
	return WithOverride(func(cfg *types.AppConfig) {
		if cfg.API == nil {
			cfg.API = &types.UserAPIConfig{}
		}
		cfg.API.Listen = types.StringPtr(listen)
	})
}

// WithWorkers 覆盖批量推导并发数
func WithWorkers(workers int) Option {
	return WithOverride(func(cfg *types.AppConfig) {
		if cfg.Batch == nil {
			cfg.Batch = &types.UserBatchConfig{}
		}
		cfg.Batch.Workers = types.IntPtr(workers)
	})
}

// WithLogLevel 覆盖日志级别
func WithLogLevel(level string) Option {
	return WithOverride(func(cfg *types.AppConfig) {
		if cfg.Log == nil {
			cfg.Log = &types.UserLogConfig{}
		}
		cfg.Log.Level = types.StringPtr(level)
	})
}

// WithEntropy 指定随机种子的熵源
func WithEntropy(entropy io.Reader) Option {
	return func(o *options) {
		o.entropy = entropy
	}
}

// WithAPI 启用API模块
func WithAPI() Option {
	return func(o *options) {
		o.enableAPI = true
	}
}

// WithoutAPI 禁用API模块
func WithoutAPI() Option {
	return func(o *options) {
		o.enableAPI = false
	}
}

// newOptions 创建选项
func newOptions(opts ...Option) *options {
	options := &options{
		enableAPI: false,
	}

	// 应用自定义选项
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// GetAppConfig 返回应用程序配置
// 实现config.AppOptions接口
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}

// resolveConfig 加载配置文件并应用覆盖项，结果写回 appConfig
func (o *options) resolveConfig() error {
	if o.appConfig == nil {
		appConfig, err := LoadConfig(o.configFilePath, o.embeddedConfig)
		if err != nil {
			return err
		}
		o.appConfig = appConfig
	}

	for _, override := range o.overrides {
		override(o.appConfig)
	}
	return nil
}
