package api

import (
	"github.com/weisyn/keyaddr/internal/api/http"
	"go.uber.org/fx"
)

// Module 返回API模块选项，使其可以被fx框架注册
//
// 包含HTTP服务器以及确保服务器被实例化的 Invoke；指标注册表由 metrics 模块提供。
func Module() fx.Option {
	return fx.Module("api",
		http.Module(),

		// 显式依赖服务器，触发其生命周期钩子
		fx.Invoke(func(server *http.Server) {}),
	)
}
