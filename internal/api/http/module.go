package http

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	apiconfig "github.com/weisyn/keyaddr/internal/config/api"
	logimpl "github.com/weisyn/keyaddr/internal/core/infrastructure/log"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/keyaddr/pkg/interfaces/infrastructure/log"
)

// ServerParams HTTP服务器依赖参数
type ServerParams struct {
	fx.In

	Lifecycle      fx.Lifecycle
	Options        *apiconfig.APIOptions
	Logger         log.Logger
	Pipeline       crypto.Pipeline
	SecretSource   crypto.SecretSource
	AddressManager crypto.AddressManager
	KeyDeriver     crypto.KeyDeriver
	Clock          clock.Clock           `optional:"true"`
	Registerer     prometheus.Registerer `optional:"true"`
	Gatherer       prometheus.Gatherer   `optional:"true"`
}

// ProvideServer 创建服务器并绑定生命周期
func ProvideServer(params ServerParams) *Server {
	logger := logimpl.NewModuleLogger(params.Logger, "api")
	server := NewServer(params.Options, logger, Dependencies{
		Pipeline:       params.Pipeline,
		SecretSource:   params.SecretSource,
		AddressManager: params.AddressManager,
		KeyDeriver:     params.KeyDeriver,
		Clock:          params.Clock,
		Registerer:     params.Registerer,
		Gatherer:       params.Gatherer,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Stop(ctx)
		},
	})
	return server
}

// Module 返回HTTP服务模块
func Module() fx.Option {
	return fx.Options(
		fx.Provide(ProvideServer),
	)
}
