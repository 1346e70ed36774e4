package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weisyn/keyaddr/configs"
	"github.com/weisyn/keyaddr/internal/app"
)

// newServeCmd 启动HTTP API
func (c *cli) newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP API",
		Long: `启动 gin HTTP 服务：

  GET  /health
  POST /v1/address/derive
  GET  /v1/address/:address
  GET  /metrics            (api.enable_metrics)

默认开启地址解码缓存。收到 SIGINT/SIGTERM 后优雅退出。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append(c.appOptions(cmd, configs.GetServeConfig()), app.WithAPI())
			if cmd.Flags().Changed("listen") {
				opts = append(opts, app.WithListen(listen))
			}

			application, err := app.Start(opts...)
			if err != nil {
				return err
			}

			services := application.Services()
			c.formatter.PrintSuccess(fmt.Sprintf("HTTP API 已启动: http://%s (deriver=%s version=0x%02x)",
				services.Server.Addr(), services.KeyDeriver.Name(), services.AddressManager.Version()))
			c.formatter.PrintInfo("按 Ctrl+C 停止")

			return application.Wait(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "监听地址，例如 127.0.0.1:8080")
	return cmd
}
