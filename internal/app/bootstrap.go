package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/fx"

	"github.com/weisyn/keyaddr/internal/api"
	apihttp "github.com/weisyn/keyaddr/internal/api/http"
	config "github.com/weisyn/keyaddr/internal/config"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/clock"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/crypto"
	logimpl "github.com/weisyn/keyaddr/internal/core/infrastructure/log"
	"github.com/weisyn/keyaddr/internal/core/infrastructure/metrics"
	configiface "github.com/weisyn/keyaddr/pkg/interfaces/config"
	cryptoiface "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	logiface "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
)

// 启动的最长等待时间
const startTimeout = 30 * time.Second

// Services 已装配的服务集合
type Services struct {
	Provider       configiface.Provider
	Logger         logiface.Logger
	SecretSource   cryptoiface.SecretSource
	KeyDeriver     cryptoiface.KeyDeriver
	HashManager    cryptoiface.HashManager
	AddressManager cryptoiface.AddressManager
	Pipeline       cryptoiface.Pipeline

	// Server 仅在启用API时非nil
	Server *apihttp.Server
}

// Bootstrap 应用引导程序
type Bootstrap struct {
	opts     *options
	fxApp    *fx.App
	services Services
}

// NewBootstrap 创建引导程序
func NewBootstrap(opts *options) *Bootstrap {
	return &Bootstrap{
		opts: opts,
	}
}

// SetupInfrastructureLayer 设置基础设施层模块
func (b *Bootstrap) SetupInfrastructureLayer() []fx.Option {
	modules := []fx.Option{
		fx.Provide(func() configiface.AppOptions { return b.opts }),

		config.Module(),  // 1. 配置(不依赖其他)
		logimpl.Module(), // 2. 日志(依赖配置)
		clock.Module(),   // 3. 时钟
		crypto.Module(),  // 4. 密码学(依赖配置、日志和时钟)
	}

	if b.opts.entropy != nil {
		entropy := b.opts.entropy
		modules = append(modules, fx.Provide(fx.Annotated{
			Name:   "entropy",
			Target: func() io.Reader { return entropy },
		}))
	}

	return modules
}

// SetupApplicationLayer 设置应用层模块
func (b *Bootstrap) SetupApplicationLayer() []fx.Option {
	var modules []fx.Option

	// 条件性添加API模块
	if b.opts.enableAPI {
		modules = append(modules,
			metrics.Module(),
			api.Module(),
			fx.Populate(&b.services.Server),
		)
	}

	return modules
}

// SetupModules 设置所有应用模块
func (b *Bootstrap) SetupModules() []fx.Option {
	var allModules []fx.Option
	allModules = append(allModules, b.SetupInfrastructureLayer()...)
	allModules = append(allModules, b.SetupApplicationLayer()...)
	return allModules
}

// CreateFxApp 创建并配置fx应用
func (b *Bootstrap) CreateFxApp() error {
	if err := b.opts.resolveConfig(); err != nil {
		return err
	}
	if err := config.ValidateAppConfig(b.opts.appConfig); err != nil {
		return err
	}

	appOptions := []fx.Option{
		// 加载所有模块
		fx.Options(b.SetupModules()...),

		// 禁用fx内部日志
		fx.NopLogger,

		fx.Populate(
			&b.services.Provider,
			&b.services.Logger,
			&b.services.SecretSource,
			&b.services.KeyDeriver,
			&b.services.HashManager,
			&b.services.AddressManager,
			&b.services.Pipeline,
		),

		// 生命周期钩子
		fx.Invoke(func(lifecycle fx.Lifecycle, logger logiface.Logger) {
			lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					logger.Debug("应用模块装配完成")
					return nil
				},
				OnStop: func(context.Context) error {
					logger.Debug("准备停止应用")
					// stderr 等控制台输出 Sync 会返回 EINVAL，忽略
					_ = logger.Sync()
					return nil
				},
			})
		}),
	}

	// 创建fx应用
	b.fxApp = fx.New(appOptions...)
	if err := b.fxApp.Err(); err != nil {
		return fmt.Errorf("装配模块失败: %w", err)
	}
	return nil
}

// StartApp 启动应用程序
func (b *Bootstrap) StartApp(ctx context.Context) error {
	if err := b.fxApp.Start(ctx); err != nil {
		return fmt.Errorf("启动应用失败: %w", err)
	}
	return nil
}

// StopApp 停止应用程序
func (b *Bootstrap) StopApp(ctx context.Context) error {
	if err := b.fxApp.Stop(ctx); err != nil {
		return fmt.Errorf("停止应用失败: %w", err)
	}
	return nil
}

// BootstrapApp 执行完整的引导过程并返回应用实例
func BootstrapApp(options ...Option) (App, error) {
	opts := newOptions(options...)

	bootstrap := NewBootstrap(opts)
	if err := bootstrap.CreateFxApp(); err != nil {
		return nil, fmt.Errorf("创建应用失败: %w", err)
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), startTimeout)
	defer startupCancel()

	if err := bootstrap.StartApp(startupCtx); err != nil {
		return nil, err
	}

	return &internalApp{bootstrap: bootstrap}, nil
}
