package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 指标收集中间件
// 收集API请求计数与耗时
type Metrics struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.SummaryVec
}

// NewMetrics 创建指标中间件
//
// registerer 为 nil 时只计数不注册。
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	m := &Metrics{}

	m.requestCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "keyaddr",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	m.requestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "keyaddr",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)

	m.responseSize = factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "keyaddr",
			Subsystem:  "api",
			Name:       "response_size_bytes",
			Help:       "API response size in bytes",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method", "path"},
	)

	return m
}

// Middleware 返回Gin中间件
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		c.Next()

		// 使用路由模板作为标签，地址参数不进入标签值
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		m.requestCounter.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		if size := c.Writer.Size(); size > 0 {
			m.responseSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
