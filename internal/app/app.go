package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weisyn/keyaddr/configs"
	config "github.com/weisyn/keyaddr/internal/config"
	"github.com/weisyn/keyaddr/pkg/types"
)

// ConfigPathEnv 配置文件路径环境变量，优先级高于 --config
const ConfigPathEnv = "KEYADDR_CONFIG_PATH"

// 停止应用的最长等待时间
const stopTimeout = 30 * time.Second

// LoadConfig 加载用户配置
//
// 🔧 加载顺序：
//  1. 环境变量 KEYADDR_CONFIG_PATH
//  2. 参数 configPath
//  3. embedded（为空时使用 configs 内嵌的默认配置）
//
// 指定的文件不存在时回退到内嵌配置并在 stderr 提示；
// 文件存在但解析失败或校验不通过时返回错误。
//
// 参数：
//   - configPath: 配置文件路径，可为空
//   - embedded: 内嵌配置内容，可为 nil
//
// 返回：
//   - *types.AppConfig: 用户配置（未设置的字段为 nil）
//   - error: 读取、解析或校验失败
func LoadConfig(configPath string, embedded []byte) (*types.AppConfig, error) {
	if envPath := os.Getenv(ConfigPathEnv); envPath != "" {
		configPath = envPath
	}
	if embedded == nil {
		embedded = configs.GetDefaultConfig()
	}

	data := embedded
	source := "embedded"
	if configPath != "" {
		fileData, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(os.Stderr, "配置文件 %s 不存在，使用默认配置\n", configPath)
		case err != nil:
			return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
		default:
			data = fileData
			source = configPath
		}
	}

	// 解析JSON配置为标准的AppConfig结构
	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置失败 (%s): %w", source, err)
	}

	if err := config.ValidateAppConfig(&appConfig); err != nil {
		return nil, fmt.Errorf("配置无效 (%s): %w", source, err)
	}

	return &appConfig, nil
}

// App 是 keyaddr 应用的对外接口
type App interface {
	// Services 获取已装配的服务
	Services() *Services

	// Stop 停止应用
	Stop() error

	// Wait 阻塞直到收到退出信号或 ctx 结束，然后停止应用
	Wait(ctx context.Context) error
}

// internalApp 应用的内部实现
type internalApp struct {
	bootstrap *Bootstrap
}

// Services 获取已装配的服务
func (a *internalApp) Services() *Services {
	return &a.bootstrap.services
}

// Stop 停止应用
func (a *internalApp) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	return a.bootstrap.StopApp(ctx)
}

// Wait 等待退出信号
func (a *internalApp) Wait(ctx context.Context) error {
	// 监听中断信号和终止信号
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		a.bootstrap.services.Logger.Infof("收到信号 %v，正在优雅退出...", sig)
	case <-ctx.Done():
	}

	return a.Stop()
}

// Start 加载配置、装配并启动应用
func Start(appOptions ...Option) (App, error) {
	return BootstrapApp(appOptions...)
}
