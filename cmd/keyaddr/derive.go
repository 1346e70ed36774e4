package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weisyn/keyaddr/internal/app"
	"github.com/weisyn/keyaddr/internal/cli/prompt"
	"github.com/weisyn/keyaddr/pkg/types"
)

// newRandomCmd 随机种子
func (c *cli) newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "用随机种子推导地址",
		Long: `从操作系统随机源读取32字节种子并推导地址。

未加 --reveal 时种子不会输出，生成的地址之后无法再次推导。

示例：
  keyaddr random --reveal
  keyaddr random --deriver secp256k1 -o pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd, func(s *app.Services) error {
				seed, result, err := s.Pipeline.DeriveRandom()
				defer seed.Wipe()
				if err != nil {
					return err
				}
				if !c.flags.Reveal {
					c.formatter.PrintWarning("未使用 --reveal，种子不会输出")
				}
				return c.printDerivation(s, result, &seed)
			})
		},
	}
}

// newFromTextCmd 文本种子
func (c *cli) newFromTextCmd() *cobra.Command {
	var usePrompt bool

	cmd := &cobra.Command{
		Use:   "from-text [text]",
		Short: "用 SHA256(文本) 作为种子推导地址",
		Long: `种子 = SHA256(文本的UTF-8字节)。空字符串也是合法输入。

--prompt 从标准输入读取文本（终端下不回显），避免文本进入 shell 历史。

示例：
  keyaddr from-text "correct horse battery staple"
  keyaddr from-text --prompt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.readInput(args, usePrompt, "种子文本")
			if err != nil {
				return err
			}
			return c.withServices(cmd, func(s *app.Services) error {
				seed := s.SecretSource.SecretFromText(text)
				defer seed.Wipe()
				return c.deriveAndPrint(s, seed)
			})
		},
	}
	cmd.Flags().BoolVar(&usePrompt, "prompt", false, "从标准输入读取（终端下不回显）")
	return cmd
}

// newFromHexCmd 十六进制种子
func (c *cli) newFromHexCmd() *cobra.Command {
	var usePrompt bool

	cmd := &cobra.Command{
		Use:   "from-hex [hex]",
		Short: "用64位十六进制种子推导地址",
		Long: `接受可选的 0x 前缀和首尾空白。

示例：
  keyaddr from-hex 0000000000000000000000000000000000000000000000000000000000000001 --deriver secp256k1
  keyaddr from-hex --prompt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := c.readInput(args, usePrompt, "种子十六进制")
			if err != nil {
				return err
			}
			return c.withServices(cmd, func(s *app.Services) error {
				seed, err := s.SecretSource.SecretFromHex(raw)
				defer seed.Wipe()
				if err != nil {
					return err
				}
				return c.deriveAndPrint(s, seed)
			})
		},
	}
	cmd.Flags().BoolVar(&usePrompt, "prompt", false, "从标准输入读取（终端下不回显）")
	return cmd
}

// newFromMnemonicCmd 助记词种子
func (c *cli) newFromMnemonicCmd() *cobra.Command {
	var usePrompt bool

	cmd := &cobra.Command{
		Use:   "from-mnemonic [words...]",
		Short: "用24词BIP39助记词还原种子并推导地址",
		Long: `助记词熵即种子本身（非 BIP32 派生）。多个参数以空格拼接。

示例：
  keyaddr from-mnemonic abandon abandon ... art
  keyaddr from-mnemonic --prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var words string
			if len(args) > 0 && !usePrompt {
				words = strings.Join(args, " ")
			} else {
				var err error
				if words, err = c.readInput(args, usePrompt, "助记词"); err != nil {
					return err
				}
			}
			return c.withServices(cmd, func(s *app.Services) error {
				seed, err := s.SecretSource.SecretFromMnemonic(words)
				defer seed.Wipe()
				if err != nil {
					return err
				}
				return c.deriveAndPrint(s, seed)
			})
		},
	}
	cmd.Flags().BoolVar(&usePrompt, "prompt", false, "从标准输入读取（终端下不回显）")
	return cmd
}

// readInput 参数与 --prompt 二选一
func (c *cli) readInput(args []string, usePrompt bool, label string) (string, error) {
	switch {
	case usePrompt && len(args) > 0:
		return "", fmt.Errorf("--prompt 与位置参数不能同时使用")
	case usePrompt:
		return prompt.ReadHidden(c.in, c.errOut, label)
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("缺少%s：给出位置参数或使用 --prompt", label)
	}
}

// deriveAndPrint 推导并输出
func (c *cli) deriveAndPrint(s *app.Services, seed types.Secret) error {
	result, err := s.Pipeline.Derive(seed)
	if err != nil {
		return err
	}
	return c.printDerivation(s, result, &seed)
}

// printDerivation 输出推导结果；--reveal 时附带种子与助记词
func (c *cli) printDerivation(s *app.Services, result *types.DerivationResult, seed *types.Secret) error {
	if !c.flags.Reveal {
		return c.formatter.Print(types.NewDerivationView(result, nil))
	}

	view := types.NewDerivationView(result, seed)
	mnemonic, err := s.SecretSource.SecretToMnemonic(*seed)
	if err != nil {
		return err
	}
	view.Mnemonic = mnemonic
	return c.formatter.Print(view)
}
