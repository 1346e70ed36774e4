package api

import "time"

// API服务默认配置值
const (
	// defaultListen 仅监听本机，教学用途无需对外暴露
	defaultListen = "127.0.0.1:8080"

	// defaultEnableMetrics 默认暴露 /metrics
	defaultEnableMetrics = true

	// defaultReadTimeout HTTP读取超时
	defaultReadTimeout = 15 * time.Second

	// defaultWriteTimeout HTTP写入超时
	defaultWriteTimeout = 15 * time.Second

	// defaultShutdownTimeout 优雅关闭等待时间
	defaultShutdownTimeout = 5 * time.Second

	// defaultMaxRequestSize 最大请求体（字节）
	defaultMaxRequestSize = 64 * 1024
)
