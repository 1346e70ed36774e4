package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/weisyn/keyaddr/configs"
	"github.com/weisyn/keyaddr/internal/app"
	"github.com/weisyn/keyaddr/internal/cli/output"
	"github.com/weisyn/keyaddr/pkg/types"
)

// errReported 结果已输出、只需以非零状态退出
var errReported = errors.New("已输出失败结果")

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigFile   string // 配置文件路径
	OutputFormat string // 输出格式
	Network      string // 网络名称
	VersionByte  uint8  // 显式版本字节
	Deriver      string // 公钥推导方式
	Reveal       bool   // 输出种子与助记词
}

// cli 单次命令执行的上下文
type cli struct {
	flags     GlobalFlags
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	formatter *output.Formatter

	// 测试中注入确定性熵源
	entropy io.Reader
}

// cliOption 调整命令上下文（测试使用）
type cliOption func(*cli)

// withEntropy 指定随机种子的熵源
func withEntropy(entropy io.Reader) cliOption {
	return func(c *cli) {
		c.entropy = entropy
	}
}

// newRootCommand 创建根命令
func newRootCommand(in io.Reader, out, errOut io.Writer, opts ...cliOption) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:   "keyaddr",
		Short: "种子 → 公钥 → hash160 → Base58Check 地址",
		Long: `keyaddr - 比特币风格地址推导工具

推导流程：
  32字节种子 → 公钥(未压缩/压缩) → RIPEMD160(SHA256(压缩公钥))
  → 版本字节 ‖ hash160 → 双SHA256校验和 → Base58Check 地址

默认使用 educational 推导（仅用于教学演示，公钥不在曲线上）；
--deriver secp256k1 得到真实的比特币 P2PKH 地址。

种子和助记词默认不输出，需要时使用 --reveal。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(c.flags.OutputFormat)
			if err != nil {
				return err
			}
			c.formatter = output.NewFormatter(format, c.out, c.errOut)
			return nil
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// 全局标志
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.ConfigFile, "config", "c", "", "配置文件路径 (环境变量 "+app.ConfigPathEnv+" 优先)")
	pf.StringVarP(&c.flags.OutputFormat, "output", "o", "json", "输出格式: json|pretty")
	pf.StringVar(&c.flags.Network, "network", "", "网络: mainnet|testnet3|regtest|signet|simnet")
	pf.Uint8Var(&c.flags.VersionByte, "version-byte", 0, "显式版本字节 (优先于 --network)")
	pf.StringVar(&c.flags.Deriver, "deriver", "", "公钥推导方式: educational|secp256k1")
	pf.BoolVar(&c.flags.Reveal, "reveal", false, "输出种子十六进制与助记词")

	// 添加子命令
	rootCmd.AddCommand(
		c.newRandomCmd(),
		c.newFromTextCmd(),
		c.newFromHexCmd(),
		c.newFromMnemonicCmd(),
		c.newDecodeCmd(),
		c.newValidateCmd(),
		c.newBatchCmd(),
		c.newServeCmd(),
		c.newVersionCmd(),
	)

	return rootCmd
}

// appOptions 由全局标志构造应用选项
//
// 只有显式设置的标志才覆盖配置文件。
func (c *cli) appOptions(cmd *cobra.Command, embedded []byte) []app.Option {
	opts := []app.Option{
		app.WithConfigFile(c.flags.ConfigFile),
		app.WithEmbeddedConfig(embedded),
	}

	override := &types.UserAddressConfig{}
	flags := cmd.Flags()
	if flags.Changed("network") {
		override.Network = types.StringPtr(c.flags.Network)
	}
	if flags.Changed("version-byte") {
		override.VersionByte = types.Uint8Ptr(c.flags.VersionByte)
	}
	if flags.Changed("deriver") {
		override.KeyDerivation = types.StringPtr(c.flags.Deriver)
	}
	opts = append(opts, app.WithAddress(override))

	if c.entropy != nil {
		opts = append(opts, app.WithEntropy(c.entropy))
	}
	return opts
}

// startApp 启动不含API的应用
func (c *cli) startApp(cmd *cobra.Command, extra ...app.Option) (app.App, error) {
	opts := append(c.appOptions(cmd, configs.GetDefaultConfig()), app.WithoutAPI())
	opts = append(opts, extra...)
	application, err := app.Start(opts...)
	if err != nil {
		return nil, err
	}
	return application, nil
}

// withServices 启动应用、执行 fn 并停止应用
func (c *cli) withServices(cmd *cobra.Command, fn func(*app.Services) error, extra ...app.Option) (err error) {
	application, err := c.startApp(cmd, extra...)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := application.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("停止应用失败: %w", stopErr)
		}
	}()
	return fn(application.Services())
}
