// Command keyaddr 比特币风格地址推导命令行工具
package main

import (
	"errors"
	"os"

	"github.com/weisyn/keyaddr/internal/cli/output"
)

func main() {
	rootCmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			output.NewFormatter(output.FormatJSON, os.Stdout, os.Stderr).PrintError(err)
		}
		os.Exit(1)
	}
}
