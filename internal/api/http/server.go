package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weisyn/keyaddr/internal/api/http/handlers"
	"github.com/weisyn/keyaddr/internal/api/http/middleware"
	apiconfig "github.com/weisyn/keyaddr/internal/config/api"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
)

// Dependencies HTTP服务器依赖的服务
type Dependencies struct {
	Pipeline       crypto.Pipeline
	SecretSource   crypto.SecretSource
	AddressManager crypto.AddressManager
	KeyDeriver     crypto.KeyDeriver

	// Clock 健康检查时间源，nil 使用系统时钟
	Clock clock.Clock

	// 指标注册与导出，均可为 nil
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Server HTTP服务器结构
// 负责提供地址推导相关的HTTP API服务
type Server struct {
	router     *gin.Engine  // Gin路由引擎
	httpServer *http.Server // 标准HTTP服务器
	options    *apiconfig.APIOptions
	logger     log.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewServer 创建新的HTTP服务器
//
// 参数:
//   - options: API配置
//   - logger: 日志接口
//   - deps: 推导流水线、地址服务等
//
// 返回:
//   - 已注册全部路由、尚未监听的服务器
func NewServer(options *apiconfig.APIOptions, logger log.Logger, deps Dependencies) *Server {
	// 请求日志由自有中间件负责，关闭gin自带输出
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.NewMetrics(deps.Registerer).Middleware(),
		middleware.BodyLimit(options.MaxRequestSize),
	)

	server := &Server{
		router:  router,
		options: options,
		logger:  logger,
	}
	server.setupRoutes(deps)
	return server
}

// setupRoutes 设置所有路由
func (s *Server) setupRoutes(deps Dependencies) {
	handlers.NewHealthHandler(deps.Clock, deps.KeyDeriver, deps.AddressManager).RegisterRoutes(s.router)

	v1 := s.router.Group("/v1")
	handlers.NewAddressHandlers(deps.Pipeline, deps.SecretSource, deps.AddressManager, s.logger).RegisterRoutes(v1)

	if s.options.EnableMetrics && deps.Gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
		s.logger.Debug("已注册 /metrics 端点")
	}

	s.logger.Debug("HTTP路由注册完成")
}

// Handler 返回路由处理器（测试使用）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start 启动HTTP服务器
//
// 监听成功后立即返回，请求在后台协程处理。
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("HTTP服务器已启动: %s", s.listener.Addr())
	}

	listener, err := net.Listen("tcp", s.options.Listen)
	if err != nil {
		return fmt.Errorf("监听 %s 失败: %w", s.options.Listen, err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.options.ReadTimeout,
		WriteTimeout: s.options.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		// 正常关闭时返回 http.ErrServerClosed，不应视为错误
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("❌ HTTP服务器运行失败: %v", err)
		}
	}()

	s.logger.Infof("✅ HTTP服务器启动成功，监听地址: %s", listener.Addr())
	return nil
}

// Addr 实际监听地址，未启动时为空
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop 停止HTTP服务器
// 优雅地关闭服务器，等待所有请求处理完成
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}

	stopCtx, cancel := context.WithTimeout(ctx, s.options.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(stopCtx); err != nil {
		s.logger.Errorf("HTTP服务器关闭出错: %v", err)
		return err
	}

	s.httpServer = nil
	s.listener = nil
	s.logger.Info("HTTP服务器已关闭")
	return nil
}
