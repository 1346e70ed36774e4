// Package crypto 提供地址推导相关的加密服务
package crypto

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	config "github.com/weisyn/keyaddr/pkg/interfaces/config"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	log "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CryptoParams 定义加密模块的依赖参数
type CryptoParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Provider   config.Provider       // 配置提供者
	Logger     log.Logger            `optional:"true"` // 日志记录器
	Entropy    io.Reader             `name:"entropy" optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
	Clock      clock.Clock           `optional:"true"`
}

// CryptoOutput 定义加密模块的输出结构
type CryptoOutput struct {
	fx.Out

	SecretSource   crypto.SecretSource
	KeyDeriver     crypto.KeyDeriver
	HashManager    crypto.HashManager
	AddressManager crypto.AddressManager
	Pipeline       crypto.Pipeline

	// 解码缓存未启用时为空
	CacheReporters []metrics.CacheReporter `group:"cache_reporters,flatten"`
}

// Module 返回加密模块
func Module() fx.Option {
	return fx.Module("crypto",
		// 提供加密服务
		fx.Provide(ProvideCryptoServices),
	)
}

// ProvideCryptoServices 提供加密服务
func ProvideCryptoServices(params CryptoParams) (CryptoOutput, error) {
	serviceInput := ServiceInput{
		ConfigProvider: params.Provider,
		Logger:         params.Logger,
		Entropy:        params.Entropy,
		Registerer:     params.Registerer,
		Clock:          params.Clock,
	}

	serviceOutput, err := CreateCryptoServices(serviceInput)
	if err != nil {
		return CryptoOutput{}, err
	}

	var reporters []metrics.CacheReporter
	if serviceOutput.DecodeCache != nil {
		cache := serviceOutput.DecodeCache
		reporters = append(reporters, cache)
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return cache.Close()
			},
		})
	}

	return CryptoOutput{
		SecretSource:   serviceOutput.SecretSource,
		KeyDeriver:     serviceOutput.KeyDeriver,
		HashManager:    serviceOutput.HashManager,
		AddressManager: serviceOutput.AddressManager,
		Pipeline:       serviceOutput.Pipeline,
		CacheReporters: reporters,
	}, nil
}

// noopLogger 是一个无操作的Logger实现，用于可选Logger为nil时的回退
type noopLogger struct{}

func (l *noopLogger) Debug(msg string)                          {}
func (l *noopLogger) Debugf(format string, args ...interface{}) {}
func (l *noopLogger) Info(msg string)                           {}
func (l *noopLogger) Infof(format string, args ...interface{})  {}
func (l *noopLogger) Warn(msg string)                           {}
func (l *noopLogger) Warnf(format string, args ...interface{})  {}
func (l *noopLogger) Error(msg string)                          {}
func (l *noopLogger) Errorf(format string, args ...interface{}) {}
func (l *noopLogger) With(keyvals ...interface{}) log.Logger    { return l }
func (l *noopLogger) Sync() error                               { return nil }
func (l *noopLogger) GetZapLogger() *zap.Logger                 { return nil }
