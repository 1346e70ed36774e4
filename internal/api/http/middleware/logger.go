package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	infralog "github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
)

// Logger 请求日志中间件
//
// 只记录方法、路由模板、状态码和耗时；请求体可能包含种子，任何情况下都不记录。
func Logger(logger infralog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		requestID := GetRequestID(c)

		zl := logger.GetZapLogger()
		if zl == nil {
			logger.Debugf("HTTP request | id=%s method=%s path=%s status=%d latency=%s",
				requestID, c.Request.Method, c.FullPath(), status, latency)
			return
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		switch {
		case status >= 500:
			zl.Error("HTTP request", fields...)
		case status >= 400:
			zl.Warn("HTTP request", fields...)
		default:
			zl.Info("HTTP request", fields...)
		}
	}
}

// BodyLimit 限制请求体大小
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
