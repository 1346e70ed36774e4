package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apitypes "github.com/weisyn/keyaddr/internal/api/http/types"
	"github.com/weisyn/keyaddr/internal/app/version"
	clockimpl "github.com/weisyn/keyaddr/internal/core/infrastructure/clock"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
)

// HealthHandler 健康检查端点处理器
type HealthHandler struct {
	clock          clock.Clock
	startTime      time.Time
	keyDeriver     crypto.KeyDeriver
	addressManager crypto.AddressManager
}

// NewHealthHandler 创建健康检查处理器
//
// c 为 nil 时使用系统时钟；运行时长从创建处理器时开始计算。
func NewHealthHandler(c clock.Clock, keyDeriver crypto.KeyDeriver, addressManager crypto.AddressManager) *HealthHandler {
	if c == nil {
		c = clockimpl.NewSystemClock()
	}
	return &HealthHandler{
		clock:          c,
		startTime:      c.Now(),
		keyDeriver:     keyDeriver,
		addressManager: addressManager,
	}
}

// RegisterRoutes 注册健康检查路由
func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.GetHealth)
}

// GetHealth 返回服务状态
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, apitypes.HealthResponse{
		Status:         "ok",
		Version:        version.GetVersion(),
		Deriver:        h.keyDeriver.Name(),
		AddressVersion: h.addressManager.Version(),
		Uptime:         h.clock.Since(h.startTime).Truncate(time.Second).String(),
		Timestamp:      h.clock.Now().UTC().Format(time.RFC3339),
	})
}
