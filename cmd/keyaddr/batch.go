package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/weisyn/keyaddr/internal/app"
	"github.com/weisyn/keyaddr/internal/cli/prompt"
	"github.com/weisyn/keyaddr/pkg/types"
)

// 批量输入的种子格式
const (
	batchSourceHex      = "hex"
	batchSourceText     = "text"
	batchSourceMnemonic = "mnemonic"
)

// BatchItem batch 命令的单条输出
type BatchItem struct {
	Index int `json:"index"`
	types.DerivationView
}

// newBatchCmd 批量推导
func (c *cli) newBatchCmd() *cobra.Command {
	var (
		source  string
		file    string
		random  int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "并发推导多个种子",
		Long: `从文件或标准输入逐行读取种子（去掉首尾空白，忽略空行和 # 开头的行），并发推导后按输入顺序输出。

--random N 改为生成N个随机种子。任意一个种子无效时整个批次失败，不输出部分结果。

示例：
  keyaddr batch --source text < seeds.txt
  keyaddr batch --source hex --file secrets.txt --workers 4
  keyaddr batch --random 100 --reveal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			if random <= 0 {
				var err error
				if lines, err = c.readBatchLines(file); err != nil {
					return err
				}
				if len(lines) == 0 {
					return fmt.Errorf("没有读取到任何种子")
				}
			}

			var extra []app.Option
			if cmd.Flags().Changed("workers") {
				extra = append(extra, app.WithWorkers(workers))
			}

			return c.withServices(cmd, func(s *app.Services) error {
				secrets, err := c.batchSecrets(s, source, lines, random)
				defer func() {
					for i := range secrets {
						secrets[i].Wipe()
					}
				}()
				if err != nil {
					return err
				}

				results, err := s.Pipeline.DeriveBatch(cmd.Context(), secrets, 0)
				if err != nil {
					return err
				}

				items := make([]BatchItem, len(results))
				for i, result := range results {
					var seed *types.Secret
					if c.flags.Reveal {
						seed = &secrets[i]
					}
					items[i] = BatchItem{Index: i, DerivationView: types.NewDerivationView(result, seed)}
				}
				return c.formatter.Print(items)
			}, extra...)
		},
	}

	cmd.Flags().StringVar(&source, "source", batchSourceHex, "种子格式: hex|text|mnemonic")
	cmd.Flags().StringVarP(&file, "file", "f", "", "输入文件（默认标准输入）")
	cmd.Flags().IntVar(&random, "random", 0, "生成N个随机种子，忽略输入")
	cmd.Flags().IntVar(&workers, "workers", 0, "并发数（0 表示CPU数）")
	return cmd
}

// readBatchLines 读取输入行
func (c *cli) readBatchLines(file string) ([]string, error) {
	var in io.Reader = c.in
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("打开输入文件失败: %w", err)
		}
		defer f.Close()
		in = f
	}
	return prompt.ReadLines(in)
}

// batchSecrets 把输入行转换为种子
//
// 错误只带行号，不带行内容。
func (c *cli) batchSecrets(s *app.Services, source string, lines []string, random int) ([]types.Secret, error) {
	if random > 0 {
		secrets := make([]types.Secret, random)
		for i := range secrets {
			seed, err := s.SecretSource.RandomSecret()
			if err != nil {
				return secrets, err
			}
			secrets[i] = seed
		}
		return secrets, nil
	}

	secrets := make([]types.Secret, len(lines))
	for i, line := range lines {
		var err error
		switch source {
		case batchSourceHex:
			secrets[i], err = s.SecretSource.SecretFromHex(line)
		case batchSourceText:
			secrets[i] = s.SecretSource.SecretFromText(line)
		case batchSourceMnemonic:
			secrets[i], err = s.SecretSource.SecretFromMnemonic(line)
		default:
			return secrets, fmt.Errorf("未知种子格式 %q，支持 hex|text|mnemonic", source)
		}
		if err != nil {
			return secrets, fmt.Errorf("第 %d 行: %w", i+1, err)
		}
	}
	return secrets, nil
}
